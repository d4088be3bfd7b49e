package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 12
)

// GenerateID produz um identificador curto e seguro para URLs
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}

// NewAdvertiserID gera o identificador prefixado de contas de anunciante
func NewAdvertiserID() (string, error) {
	id, err := GenerateID()
	if err != nil {
		return "", err
	}

	return "adv_" + id, nil
}

// NewCampaignID gera o identificador prefixado de campanhas
func NewCampaignID() (string, error) {
	id, err := GenerateID()
	if err != nil {
		return "", err
	}

	return "cmp_" + id, nil
}
