package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/dkazarov/dk_go_stream_alerts/internal/client/modeldto"
)

func randStringBytes(n int) string {
	const letterBytes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	b := make([]byte, n)
	for i := range b {
		b[i] = letterBytes[rand.Intn(len(letterBytes))]
	}
	return string(b)
}

func main() {
	a := flag.String("a", "http://localhost:5000", "LNbits instance base URL")
	s := flag.String("s", "", "Target service link identifier")
	flag.Parse()
	address := *a
	serviceID := *s

	const postDonation = "/streamalerts/api/v1/donations"
	const iterations = 20

	client := resty.New()

	// Performing donation posting
	log.Println("Performing donation posting")
	for i := 0; i < iterations; i++ {
		payload := modeldto.CreateDonationRequest{
			Name:    randStringBytes(8),
			Sats:    int64(rand.Intn(10000) + 1),
			Service: serviceID,
			Message: "load " + randStringBytes(16),
			CurCode: "sat",
		}
		res, err := client.R().
			SetHeader("Content-Type", "application/json").
			SetBody(payload).
			Post(address + postDonation)
		if err != nil {
			log.Fatal(err)
		}
		log.Println("Iteration", i, res.StatusCode())
	}
	time.Sleep(1 * time.Second)
}
