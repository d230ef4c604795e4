// Package dto holds the request and response shapes of the public HTTP API.
package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type OTPRequest struct {
	Phone string `json:"phone"`
}

type OTPVerifyRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
	Role  string `json:"role,omitempty"`
}

type OTPVerifyResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	Verified  bool      `json:"is_verified"`
	CreatedAt time.Time `json:"created_at"`
}

type UserCreate struct {
	Phone string `json:"phone"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
}

type ClinicProfileSetup struct {
	BusinessName   string `json:"business_name"`
	Address        string `json:"address,omitempty"`
	ContactPhone   string `json:"contact_phone,omitempty"`
	BusinessRegURL string `json:"business_reg_url"`
}

type PharmacyProfileSetup struct {
	BusinessName       string `json:"business_name"`
	Address            string `json:"address,omitempty"`
	ContactPhone       string `json:"contact_phone,omitempty"`
	BusinessRegURL     string `json:"business_reg_url"`
	PharmacyLicenseURL string `json:"pharmacy_license_url"`
}

type NotificationRequest struct {
	TargetUserID string `json:"target_user_id,omitempty"`
	Role         string `json:"role,omitempty"`
	Message      string `json:"message"`
}

type NotificationResponse struct {
	Recipients int `json:"recipients"`
}

type DriverProfileUpdate struct {
	Region         string `json:"region,omitempty"`
	AvailableHours string `json:"available_hours,omitempty"`
}

type OrderItemCreate struct {
	DrugName    string          `json:"drug_name"`
	Quantity    int64           `json:"quantity"`
	PriceAgreed decimal.Decimal `json:"price_agreed"`
}

type OrderCreate struct {
	PharmacyID      string            `json:"pharmacy_id"`
	DeliveryAddress string            `json:"delivery_address"`
	Items           []OrderItemCreate `json:"items"`
}

type OrderItem struct {
	ID          int64           `json:"id"`
	DrugName    string          `json:"drug_name"`
	Quantity    int64           `json:"quantity"`
	PriceAgreed decimal.Decimal `json:"price_agreed"`
}

type Order struct {
	ID                 string          `json:"id"`
	ClinicID           string          `json:"clinic_id"`
	PharmacyID         string          `json:"pharmacy_id"`
	Status             string          `json:"status"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	PlatformCommission decimal.Decimal `json:"platform_commission"`
	DeliveryFee        decimal.Decimal `json:"delivery_fee"`
	DeliveryCommission decimal.Decimal `json:"delivery_commission"`
	DeliveryAddress    string          `json:"delivery_address"`
	OrderCode          *string         `json:"order_code,omitempty"`
	RejectedReason     *string         `json:"rejected_reason,omitempty"`
	Items              []OrderItem     `json:"items"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

type OrderRespondRequest struct {
	Decision       string `json:"decision"`
	RejectedReason string `json:"rejected_reason,omitempty"`
}

type OrderConfirmRequest struct {
	OrderCode string `json:"order_code"`
}

type Invoice struct {
	ID              string          `json:"id"`
	PharmacyID      string          `json:"pharmacy_id"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	PeriodStart     time.Time       `json:"period_start"`
	PeriodEnd       time.Time       `json:"period_end"`
	Status          string          `json:"status"`
	PaymentProofURL *string         `json:"payment_proof_url,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

type InvoiceProofRequest struct {
	PaymentProofURL string `json:"payment_proof_url"`
}
