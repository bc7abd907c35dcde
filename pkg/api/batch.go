package api

import "time"

// Batch is a traceable lot of a product. Codigo is the public tracking
// code printed on labels; QRCode is the payload encoded in the label's QR.
type Batch struct {
	ID           int64      `json:"id"`
	Codigo       string     `json:"codigo"`
	QRCode       string     `json:"qr_code,omitempty"`
	ProdutoID    int64      `json:"produto_id"`
	Quantidade   float64    `json:"quantidade"`
	DataColheita *time.Time `json:"data_colheita,omitempty"`
	Status       string     `json:"status"`
	ChainTxID    string     `json:"chain_tx_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// BatchRequest is the payload for creating or updating a batch.
type BatchRequest struct {
	ProdutoID    int64      `json:"produto_id" validate:"required,gt=0"`
	Quantidade   float64    `json:"quantidade" validate:"required,gt=0"`
	DataColheita *time.Time `json:"data_colheita,omitempty"`
}

// BatchFilter narrows batch listings. Zero values are not sent.
type BatchFilter struct {
	ProdutoID int64
	Status    string
}
