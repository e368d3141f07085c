package ai

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"google.golang.org/api/option"
)

const (
	MaxAudioBytes   = 5 * 1024 * 1024
	requiredRate    = 16000
	requiredBits    = 16
	requiredChannel = 1
	pcmFormat       = 1
)

// ErrInvalidAudio is returned for input that is not 16 kHz mono 16-bit PCM WAV.
var ErrInvalidAudio = errors.New("audio must be a 16 kHz mono 16-bit PCM WAV file")

type waveHeader struct {
	RiffTag       [4]byte
	FileSize      uint32
	WaveTag       [4]byte
	FmtTag        [4]byte
	FmtSize       uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

// ValidateWAV checks the canonical 36-byte RIFF/fmt prefix of a WAV file.
func ValidateWAV(data []byte) error {
	if len(data) < 44 {
		return fmt.Errorf("%w: file too short", ErrInvalidAudio)
	}
	if len(data) > MaxAudioBytes {
		return fmt.Errorf("%w: file larger than %d bytes", ErrInvalidAudio, MaxAudioBytes)
	}

	var h waveHeader
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &h); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAudio, err)
	}
	if string(h.RiffTag[:]) != "RIFF" || string(h.WaveTag[:]) != "WAVE" || string(h.FmtTag[:]) != "fmt " {
		return fmt.Errorf("%w: missing RIFF/WAVE header", ErrInvalidAudio)
	}
	if h.AudioFormat != pcmFormat || h.NumChannels != requiredChannel ||
		h.SampleRate != requiredRate || h.BitsPerSample != requiredBits {
		return fmt.Errorf("%w: got format=%d channels=%d rate=%d bits=%d",
			ErrInvalidAudio, h.AudioFormat, h.NumChannels, h.SampleRate, h.BitsPerSample)
	}
	return nil
}

// SpeechTranscriber wraps Google Cloud Speech-to-Text.
type SpeechTranscriber struct {
	client *speech.Client
}

func NewSpeechTranscriber(ctx context.Context, credentialsFile string) (*SpeechTranscriber, error) {
	client, err := speech.NewClient(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize speech client: %w", err)
	}
	return &SpeechTranscriber{client: client}, nil
}

func (s *SpeechTranscriber) Transcribe(ctx context.Context, audio []byte, language string) (string, error) {
	if err := ValidateWAV(audio); err != nil {
		return "", err
	}
	if language == "" {
		language = "en-US"
	}

	req := &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:          speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz:   requiredRate,
			LanguageCode:      language,
			AudioChannelCount: requiredChannel,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	}

	resp, err := s.client.Recognize(ctx, req)
	if err != nil {
		return "", fmt.Errorf("speech recognition failed: %w", err)
	}

	var parts []string
	for _, result := range resp.Results {
		if len(result.Alternatives) > 0 {
			parts = append(parts, strings.TrimSpace(result.Alternatives[0].Transcript))
		}
	}
	return strings.Join(parts, " "), nil
}

func (s *SpeechTranscriber) Close() error {
	return s.client.Close()
}
