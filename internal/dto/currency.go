package dto

import (
	"time"

	"github.com/logiport/logiport_backend/internal/core/domain"
)

// CreateCurrencyRequest defines the data needed to register a currency.
type CreateCurrencyRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,uppercase,len=3"`
	Symbol       string `json:"symbol" binding:"required"`
	Precision    *int   `json:"precision" binding:"omitempty,min=0,max=8"`
	NameEN       string `json:"nameEn" binding:"required"`
	NameAR       string `json:"nameAr"`
	NameTR       string `json:"nameTr"`
}

// UpdateCurrencyRequest defines the mutable fields of a currency.
type UpdateCurrencyRequest struct {
	Symbol    *string `json:"symbol"`
	Precision *int    `json:"precision" binding:"omitempty,min=0,max=8"`
	NameEN    *string `json:"nameEn"`
	NameAR    *string `json:"nameAr"`
	NameTR    *string `json:"nameTr"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode  string    `json:"currencyCode"`
	Symbol        string    `json:"symbol"`
	Precision     int       `json:"precision"`
	NameEN        string    `json:"nameEn"`
	NameAR        string    `json:"nameAr"`
	NameTR        string    `json:"nameTr"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode:  curr.CurrencyCode,
		Symbol:        curr.Symbol,
		Precision:     curr.Precision,
		NameEN:        curr.NameEN,
		NameAR:        curr.NameAR,
		NameTR:        curr.NameTR,
		CreatedAt:     curr.CreatedAt,
		CreatedBy:     curr.CreatedBy,
		LastUpdatedAt: curr.LastUpdatedAt,
		LastUpdatedBy: curr.LastUpdatedBy,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to response DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(&curr)
	}
	return res
}
