package api

import "time"

// Product is a registered agricultural product.
type Product struct {
	ID        int64     `json:"id"`
	Nome      string    `json:"nome"`
	Categoria string    `json:"categoria"`
	Unidade   string    `json:"unidade"`
	Descricao string    `json:"descricao,omitempty"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductRequest is the payload for creating or updating a product.
type ProductRequest struct {
	Nome      string `json:"nome"      validate:"required,min=2"`
	Categoria string `json:"categoria" validate:"required"`
	Unidade   string `json:"unidade"   validate:"required"`
	Descricao string `json:"descricao,omitempty"`
}

// ProductFilter narrows product listings. Zero values are not sent.
type ProductFilter struct {
	Categoria string
	Search    string
}
