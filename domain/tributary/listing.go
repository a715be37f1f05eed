package tributary

import (
	"math/big"

	"github.com/tributary-xyz/goapi/base/ctx"
	"github.com/tributary-xyz/goapi/domain"
)

// Listing is a sell offer for a royalty token, mirrored from the market
// contract by the indexer. Amounts and prices are base-10 integer strings
// in the token's / payment token's smallest unit.
type Listing struct {
	ChainId       domain.ChainId `json:"chainId" bson:"chainId"`
	ListingId     uint64         `json:"listingId" bson:"listingId"`
	Seller        domain.Address `json:"seller" bson:"seller"`
	Vault         domain.Address `json:"vault" bson:"vault"`
	Token         domain.Address `json:"token" bson:"token"`
	Amount        string         `json:"amount" bson:"amount"`
	Sold          string         `json:"sold" bson:"sold"`
	PricePerToken string         `json:"pricePerToken" bson:"pricePerToken"`
	PaymentToken  domain.Address `json:"paymentToken" bson:"paymentToken"`
	IsActive      bool           `json:"isActive" bson:"isActive"`
	IsPrimarySale bool           `json:"isPrimarySale" bson:"isPrimarySale"`
	CreatedAt     int64          `json:"createdAt" bson:"createdAt"`
	ExpiresAt     int64          `json:"expiresAt" bson:"expiresAt"`
}

func (l *Listing) ToId() ListingId {
	return ListingId{
		ChainId:   l.ChainId,
		Token:     l.Token,
		ListingId: l.ListingId,
	}
}

func (l *Listing) LowerCase() {
	l.Seller = l.Seller.ToLower()
	l.Vault = l.Vault.ToLower()
	l.Token = l.Token.ToLower()
	l.PaymentToken = l.PaymentToken.ToLower()
}

// Remaining returns amount - sold. Listings written by the indexer always
// hold sold <= amount; a malformed row yields an error, never a negative.
func (l *Listing) Remaining() (*big.Int, error) {
	amount, err := domain.ParseBigInt(l.Amount)
	if err != nil {
		return nil, err
	}
	sold, err := domain.ParseBigInt(l.Sold)
	if err != nil {
		return nil, err
	}
	rem := new(big.Int).Sub(amount, sold)
	if rem.Sign() < 0 {
		return nil, domain.ErrInvalidNumberFormat
	}
	return rem, nil
}

// Fillable reports whether the listing can be consumed by a buy at `now`
func (l *Listing) Fillable(now int64) bool {
	if !l.IsActive {
		return false
	}
	if now >= l.ExpiresAt {
		return false
	}
	rem, err := l.Remaining()
	if err != nil {
		return false
	}
	return rem.Sign() > 0
}

type ListingId struct {
	ChainId   domain.ChainId `json:"chainId" bson:"chainId"`
	Token     domain.Address `json:"token" bson:"token"`
	ListingId uint64         `json:"listingId" bson:"listingId"`
}

type ListingPatchable struct {
	Sold     *string `json:"sold" bson:"sold,omitempty"`
	IsActive *bool   `json:"isActive" bson:"isActive,omitempty"`
}

type ListingFindAllOptions struct {
	ChainId       *domain.ChainId
	Token         *domain.Address
	Vault         *domain.Address
	Seller        *domain.Address
	PaymentToken  *domain.Address
	IsActive      *bool
	IsPrimarySale *bool
	ExpiresAfter  *int64
	CreatedBefore *int64
	Offset        *int32
	Limit         *int32
	Sort          *string
}

type ListingFindAllOptionsFunc func(*ListingFindAllOptions) error

func GetListingFindAllOptions(opts ...ListingFindAllOptionsFunc) (ListingFindAllOptions, error) {
	res := ListingFindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithChainId(chainId domain.ChainId) ListingFindAllOptionsFunc {
	return func(options *ListingFindAllOptions) error {
		options.ChainId = &chainId
		return nil
	}
}

func WithToken(token domain.Address) ListingFindAllOptionsFunc {
	return func(options *ListingFindAllOptions) error {
		token = token.ToLower()
		options.Token = &token
		return nil
	}
}

func WithVault(vault domain.Address) ListingFindAllOptionsFunc {
	return func(options *ListingFindAllOptions) error {
		vault = vault.ToLower()
		options.Vault = &vault
		return nil
	}
}

func WithSeller(seller domain.Address) ListingFindAllOptionsFunc {
	return func(options *ListingFindAllOptions) error {
		seller = seller.ToLower()
		options.Seller = &seller
		return nil
	}
}

func WithPaymentToken(paymentToken domain.Address) ListingFindAllOptionsFunc {
	return func(options *ListingFindAllOptions) error {
		paymentToken = paymentToken.ToLower()
		options.PaymentToken = &paymentToken
		return nil
	}
}

func WithIsActive(isActive bool) ListingFindAllOptionsFunc {
	return func(options *ListingFindAllOptions) error {
		options.IsActive = &isActive
		return nil
	}
}

func WithIsPrimarySale(isPrimarySale bool) ListingFindAllOptionsFunc {
	return func(options *ListingFindAllOptions) error {
		options.IsPrimarySale = &isPrimarySale
		return nil
	}
}

func WithExpiresAfter(t int64) ListingFindAllOptionsFunc {
	return func(options *ListingFindAllOptions) error {
		options.ExpiresAfter = &t
		return nil
	}
}

func WithCreatedBefore(t int64) ListingFindAllOptionsFunc {
	return func(options *ListingFindAllOptions) error {
		options.CreatedBefore = &t
		return nil
	}
}

func WithPagination(offset int32, limit int32) ListingFindAllOptionsFunc {
	return func(options *ListingFindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func WithSort(sort string) ListingFindAllOptionsFunc {
	return func(options *ListingFindAllOptions) error {
		options.Sort = &sort
		return nil
	}
}

type ListingRepo interface {
	FindAll(ctx ctx.Ctx, opts ...ListingFindAllOptionsFunc) ([]*Listing, error)
	FindOne(ctx ctx.Ctx, id ListingId) (*Listing, error)
	Count(ctx ctx.Ctx, opts ...ListingFindAllOptionsFunc) (int, error)
	Upsert(ctx ctx.Ctx, listing *Listing) error
	Update(ctx ctx.Ctx, id ListingId, patchable ListingPatchable) error
	RemoveAll(ctx ctx.Ctx, opts ...ListingFindAllOptionsFunc) error
}
