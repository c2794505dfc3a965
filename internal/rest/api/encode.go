package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mwalzer/enigma/internal/core/usecases/encodemessage"
	"github.com/mwalzer/enigma/internal/rest/model"
	"github.com/mwalzer/enigma/internal/settings"
)

type EncodeForm struct {
	Rotors     []string `json:"rotors"     binding:"required"`
	Reflector  string   `json:"reflector"  binding:"required"`
	Rings      string   `json:"rings"`
	Ground     string   `json:"ground"`
	Plugboard  []string `json:"plugboard"`
	DoubleStep *bool    `json:"doublestep"`
	Message    string   `json:"message"    binding:"required"`
}

func (a *API) EncodeMessage(c *gin.Context) {
	var form EncodeForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, model.Error{Error: err.Error()})
		return
	}

	doublestep := true
	if form.DoubleStep != nil {
		doublestep = *form.DoubleStep
	}
	req := encodemessage.NewRequest(
		settings.Settings{
			Rotors:        form.Rotors,
			Reflector:     form.Reflector,
			RingSetting:   form.Rings,
			GroundSetting: form.Ground,
			Plugboard:     form.Plugboard,
			DoubleStep:    doublestep,
		},
		form.Message,
	)

	resp, err := a.encoder.Execute(c, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.Error{Error: err.Error()})
		return
	}

	messageID := uuid.New().String()
	a.logger.Info().
		Str("message_id", messageID).
		Int("length", len(form.Message)).
		Msg("Encoded message over http")
	c.JSON(http.StatusOK, model.Encoded{
		MessageID:  messageID,
		Ciphertext: resp.Ciphertext,
		Positions:  resp.Positions,
	})
}
