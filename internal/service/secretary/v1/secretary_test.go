package secretary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkazarov/dk_go_stream_alerts/internal/config"
)

// Tests

func TestSecretary_EncodeDecode(t *testing.T) {
	sec := NewSecretaryService(&config.SecretConfig{UserKey: "some_user_key"})
	token := sec.Encode("csecret")
	assert.NotEqual(t, "csecret", token)
	decoded, err := sec.Decode(token)
	assert.NoError(t, err)
	assert.Equal(t, "csecret", decoded)
}

func TestSecretary_Decode_Fail(t *testing.T) {
	sec := NewSecretaryService(&config.SecretConfig{UserKey: "some_user_key"})
	_, err := sec.Decode("not hex at all")
	assert.Error(t, err)
	other := NewSecretaryService(&config.SecretConfig{UserKey: "another_user_key"})
	_, err = other.Decode(sec.Encode("csecret"))
	assert.Error(t, err)
}

// Benchmarks

func BenchmarkSecretary_Encode(b *testing.B) {
	sec := NewSecretaryService(&config.SecretConfig{UserKey: "some_user_key"})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sec.Encode("csecret")
	}
}
