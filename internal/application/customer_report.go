package application

import (
	"context"
	"time"

	"github.com/oksasatya/kyystore-api/internal/domain/entity"
	"github.com/oksasatya/kyystore-api/pkg/fieldcrypt"
)

// cvvMask is shown for CVVs regardless of length.
const cvvMask = "***"

// FieldView shows one protected field three ways. Masked is omitted for
// fields that are not masked.
type FieldView struct {
	Encrypted string `json:"encrypted"`
	Decrypted string `json:"decrypted"`
	Masked    string `json:"masked,omitempty"`
}

type PersonalData struct {
	NIK         FieldView `json:"nik"`
	DateOfBirth FieldView `json:"dateOfBirth"`
	Phone       FieldView `json:"phone"`
	Address     FieldView `json:"address"`
}

type PaymentData struct {
	CardNumber FieldView `json:"cardNumber"`
	CardExpiry FieldView `json:"cardExpiry"`
	CardCVV    FieldView `json:"cardCvv"`
}

type CustomerView struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	Name         string       `json:"name"`
	CreatedAt    time.Time    `json:"createdAt"`
	PersonalData PersonalData `json:"personalData"`
	PaymentData  PaymentData  `json:"paymentData"`
}

// EncryptionInfo describes the token scheme to API clients.
type EncryptionInfo struct {
	Algorithm string `json:"algorithm"`
	KeySize   string `json:"keySize"`
	Mode      string `json:"mode"`
	IV        string `json:"iv"`
	AuthTag   string `json:"authTag"`
	Format    string `json:"format"`
}

var DefaultEncryptionInfo = EncryptionInfo{
	Algorithm: fieldcrypt.Algorithm,
	KeySize:   "256 bits",
	Mode:      "GCM (Galois/Counter Mode)",
	IV:        "96 bits (12 bytes, random)",
	AuthTag:   "128 bits (16 bytes)",
	Format:    "IV:AuthTag:CipherText",
}

type CustomerReport struct {
	Items      []CustomerView `json:"items"`
	Encryption EncryptionInfo `json:"encryption"`
}

// CustomerReport decrypts every non-admin record for display. Only roles
// that can decrypt may call it; failures inside a field show as sentinels.
func (s *Service) CustomerReport(ctx context.Context, viewer entity.Role) (*CustomerReport, error) {
	if !viewer.CanDecrypt() {
		return nil, ErrForbidden
	}
	users, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]CustomerView, 0, len(users))
	for _, u := range users {
		if u.Role == entity.RoleAdmin {
			continue
		}
		items = append(items, s.customerView(u))
	}
	return &CustomerReport{Items: items, Encryption: DefaultEncryptionInfo}, nil
}

func (s *Service) customerView(u *entity.User) CustomerView {
	return CustomerView{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		PersonalData: PersonalData{
			NIK:         s.maskedField(u.NIK),
			DateOfBirth: s.plainField(u.DateOfBirth),
			Phone:       s.maskedField(u.Phone),
			Address:     s.plainField(u.Address),
		},
		PaymentData: PaymentData{
			CardNumber: s.maskedField(u.CardNumber),
			CardExpiry: s.plainField(u.CardExpiry),
			CardCVV: FieldView{
				Encrypted: u.CardCVV,
				Decrypted: s.Cipher.Decrypt(u.CardCVV),
				Masked:    cvvMask,
			},
		},
	}
}

func (s *Service) plainField(token string) FieldView {
	return FieldView{Encrypted: token, Decrypted: s.Cipher.Decrypt(token)}
}

func (s *Service) maskedField(token string) FieldView {
	plain := s.Cipher.Decrypt(token)
	return FieldView{Encrypted: token, Decrypted: plain, Masked: fieldcrypt.Mask(plain, fieldcrypt.DefaultVisible)}
}
