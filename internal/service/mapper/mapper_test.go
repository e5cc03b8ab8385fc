package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkazarov/dk_go_stream_alerts/internal/client/modeldto"
	"github.com/dkazarov/dk_go_stream_alerts/internal/config"
)

func newTestNormalizer(t *testing.T) *Normalizer {
	t.Helper()
	n, err := InitNormalizer(&config.APIConfig{Locale: "en-US", Timezone: "UTC"})
	if err != nil {
		t.Fatal(err)
	}
	return n
}

// Tests

func TestInitNormalizer_Fail(t *testing.T) {
	_, err := InitNormalizer(&config.APIConfig{Locale: "not a locale", Timezone: "UTC"})
	assert.Error(t, err)
	_, err = InitNormalizer(&config.APIConfig{Locale: "en-US", Timezone: "Neverland/Nowhere"})
	assert.Error(t, err)
}

func TestNormalizeService(t *testing.T) {
	n := newTestNormalizer(t)
	raw := modeldto.ServiceResponse{
		ID:            "s1",
		State:         "h4sh",
		TwitchUser:    "somestreamer",
		ClientID:      "cid",
		ClientSecret:  "csecret",
		Wallet:        "w1",
		ServiceName:   "Streamlabs",
		Authenticated: true,
		Onchain:       "bc1qsomeaddress",
	}
	link := n.NormalizeService(raw)
	assert.Equal(t, "/streamalerts/api/v1/authenticate/s1", link.RedirectURI)
	assert.Equal(t, "/streamalerts/api/v1/getaccess/s1", link.AuthURL)
	assert.Equal(t, "/streamalerts/h4sh", link.DisplayURL)
	assert.Equal(t, "somestreamer", link.TwitchUser)
	assert.Equal(t, "w1", link.Wallet)
	assert.True(t, link.Authenticated)
}

func TestNormalizeService_MissingState(t *testing.T) {
	n := newTestNormalizer(t)
	link := n.NormalizeService(modeldto.ServiceResponse{ID: "s1"})
	assert.Equal(t, "/streamalerts/", link.DisplayURL)
}

func TestNormalizeDonation(t *testing.T) {
	n := newTestNormalizer(t)
	raw := modeldto.DonationResponse{
		ID:      "d1",
		Wallet:  "w1",
		Name:    "Anonymous",
		Message: "gg",
		CurCode: "USD",
		Sats:    1234,
		Service: "s1",
		Time:    1700000000000,
	}
	donation := n.NormalizeDonation(raw)
	assert.Equal(t, "1,234", donation.FormattedSats)
	assert.Equal(t, "2023-11-14 22:13", donation.Date)
	assert.Equal(t, int64(1234), donation.Sats)
	assert.False(t, donation.Posted)
}

func TestNormalizeDonation_Grouping(t *testing.T) {
	n := newTestNormalizer(t)
	tests := []struct {
		name string
		sats int64
		want string
	}{
		{
			name: "No grouping below one thousand",
			sats: 999,
			want: "999",
		},
		{
			name: "Single separator",
			sats: 21000,
			want: "21,000",
		},
		{
			name: "Two separators",
			sats: 100000000,
			want: "100,000,000",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			donation := n.NormalizeDonation(modeldto.DonationResponse{ID: "d1", Sats: tt.sats})
			assert.Equal(t, tt.want, donation.FormattedSats)
		})
	}
}

// Benchmarks

func BenchmarkNormalizeDonation(b *testing.B) {
	n, _ := InitNormalizer(&config.APIConfig{Locale: "en-US", Timezone: "UTC"})
	raw := modeldto.DonationResponse{ID: "d1", Sats: 1234, Time: 1700000000000}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = n.NormalizeDonation(raw)
	}
}
