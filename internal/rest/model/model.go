package model

type Encoded struct {
	MessageID  string `json:"message_id"`
	Ciphertext string `json:"ciphertext"`
	Positions  string `json:"positions"`
}

type Error struct {
	Error string `json:"error"`
}
