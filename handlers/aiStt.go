package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"receptionist/models"
	ai "receptionist/services/intelligence"
	"receptionist/services/receptionist"
	"receptionist/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AskAIVoiceHandler transcribes a multipart "audio" WAV upload and answers it
// like a typed query. Optional form field "language" defaults to en-US.
func AskAIVoiceHandler(transcriber ai.Transcriber, resolver receptionist.Resolver, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := getLogger(c, logger)

		if transcriber == nil {
			c.JSON(http.StatusServiceUnavailable, utils.ErrorResponse{
				Error:   "voice_disabled",
				Message: "Voice queries are not enabled on this server.",
			})
			return
		}

		language := c.DefaultPostForm("language", "en-US")
		file, _, err := c.Request.FormFile("audio")
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid_request", Message: "audio file is required."})
			return
		}
		defer file.Close()

		// Read one byte past the limit so oversize uploads fail validation.
		audio, err := io.ReadAll(io.LimitReader(file, ai.MaxAudioBytes+1))
		if err != nil {
			utils.RespondError(c, log, utils.Internal("read audio upload", err))
			return
		}
		if err := ai.ValidateWAV(audio); err != nil {
			c.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid_audio", Message: err.Error()})
			return
		}

		transcript, err := transcriber.Transcribe(c.Request.Context(), audio, language)
		if err != nil {
			if errors.Is(err, ai.ErrInvalidAudio) {
				c.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid_audio", Message: err.Error()})
				return
			}
			utils.RespondError(c, log, utils.Internal("transcribe audio", err))
			return
		}
		transcript = strings.TrimSpace(transcript)
		if transcript == "" {
			c.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "empty_transcript", Message: "No speech was recognized in the audio."})
			return
		}

		resp, err := resolver.Resolve(c.Request.Context(), transcript)
		if err != nil {
			utils.RespondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, models.VoiceQueryResponse{Transcript: transcript, Response: resp})
	}
}
