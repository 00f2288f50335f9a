package payment

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	coreport "github.com/brunovale/mock-payment-gateway/internal/domain/port/core"
)

const (
	pixCodeLength  = 77
	pixCodeCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// Template of the public QR rendering service the mocked gateway links to
	qrCodeURLTemplate = "https://api.qrserver.com/v1/create-qr-code/?size=200x200&data=%s"

	transactionIDSuffixLength = 8
)

// IdentifierGenerator produces transaction IDs and the auxiliary codes
// that accompany them (end-to-end ID, PIX copy-paste code, QR URL)
type IdentifierGenerator struct {
	timeProvider coreport.TimeProvider
	random       coreport.RandomSource
}

// NewIdentifierGenerator creates a new identifier generator
func NewIdentifierGenerator(timeProvider coreport.TimeProvider, random coreport.RandomSource) *IdentifierGenerator {
	return &IdentifierGenerator{
		timeProvider: timeProvider,
		random:       random,
	}
}

// NewTransactionID combines the variant prefix, the creation instant in
// unix milliseconds and a random uppercase suffix. The time component plus
// 32 bits of UUID-derived entropy make in-process collisions implausible.
func (g *IdentifierGenerator) NewTransactionID(prefix string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("%s%d%s", prefix, g.timeProvider.Now().UnixMilli(), suffix[:transactionIDSuffixLength])
}

// NewEndToEndID derives the PIX end-to-end identifier from a fixed-length
// slice of the transaction ID
func (g *IdentifierGenerator) NewEndToEndID(transactionID string) string {
	if len(transactionID) < 15 {
		return "E" + transactionID
	}
	return "E" + transactionID[3:15]
}

// NewPixCode produces the opaque copy-paste code a payer would submit to
// their banking app, 77 alphanumeric characters long
func (g *IdentifierGenerator) NewPixCode() string {
	var b strings.Builder
	b.Grow(pixCodeLength)
	for i := 0; i < pixCodeLength; i++ {
		b.WriteByte(pixCodeCharset[g.random.Intn(len(pixCodeCharset))])
	}
	return b.String()
}

// PixQrCodeURL renders the QR image URL embedding the percent-encoded code
func (g *IdentifierGenerator) PixQrCodeURL(code string) string {
	return fmt.Sprintf(qrCodeURLTemplate, url.QueryEscape(code))
}
