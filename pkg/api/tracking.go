package api

import "time"

// Tracking is the public trace of a batch, keyed by its printed code.
// Served without authentication.
type Tracking struct {
	Codigo   string          `json:"codigo"`
	Produto  string          `json:"produto"`
	Produtor string          `json:"produtor"`
	Origem   string          `json:"origem,omitempty"`
	Eventos  []TrackingEvent `json:"eventos"`
}

// TrackingEvent is one step in the public trace timeline.
type TrackingEvent struct {
	Tipo      string    `json:"tipo"`
	Local     string    `json:"local,omitempty"`
	Data      time.Time `json:"data"`
	Descricao string    `json:"descricao,omitempty"`
}
