package api

import "time"

// Movement types recognized by the platform.
const (
	MovementPlantio  = "plantio"
	MovementColheita = "colheita"
	MovementEnvio    = "envio"
)

// Movement is a recorded event in a batch's lifecycle.
type Movement struct {
	ID          int64     `json:"id"`
	LoteID      int64     `json:"lote_id"`
	Tipo        string    `json:"tipo"`
	Origem      string    `json:"origem,omitempty"`
	Destino     string    `json:"destino,omitempty"`
	Data        time.Time `json:"data"`
	Observacoes string    `json:"observacoes,omitempty"`
}

// MovementRequest is the payload for recording a movement.
type MovementRequest struct {
	LoteID      int64  `json:"lote_id" validate:"required,gt=0"`
	Tipo        string `json:"tipo"    validate:"required,oneof=plantio colheita envio"`
	Origem      string `json:"origem,omitempty"`
	Destino     string `json:"destino,omitempty"`
	Observacoes string `json:"observacoes,omitempty"`
}

// MovementFilter narrows movement listings. Zero values are not sent.
type MovementFilter struct {
	LoteID int64
	Tipo   string
}
