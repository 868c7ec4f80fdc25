package product

import (
	"errors"
	"fmt"
	"html"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/unicode/norm"
)

const (
	MaxNameLength        = 255
	MaxDescriptionLength = 1000
	MaxPrice             = 1_000_000
)

var (
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")
	ErrProductIsNotAvailable   = errs.NewValueIsInvalidError("product is not available")

	textPolicy = bluemonday.StrictPolicy()
)

// Details carries the editable attributes of a product. Empty Description and
// ImageURL mean "not set".
type Details struct {
	Name        string
	Description string
	Price       int64
	ImageURL    string
	Category    Category
	IsActive    bool
}

// Product is the menu aggregate.
type Product struct {
	id          kernel.UUID
	name        string
	description string
	price       kernel.Money
	imageURL    string
	category    Category
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time

	guard guard.ConstructorGuard
}

// NewProduct validates details and creates a product stamped with now.
func NewProduct(id kernel.UUID, details Details, now time.Time) (*Product, error) {
	p := &Product{guard: guard.NewConstructorGuard()}
	if err := errors.Join(p.setID(id), p.apply(details)); err != nil {
		return nil, err
	}
	p.createdAt = now
	p.updatedAt = now
	return p, nil
}

// RestoreProduct rebuilds a persisted product.
func RestoreProduct(id kernel.UUID, details Details, createdAt, updatedAt time.Time) (*Product, error) {
	p := &Product{guard: guard.NewConstructorGuard()}
	if err := errors.Join(p.setID(id), p.apply(details)); err != nil {
		return nil, err
	}
	p.createdAt = createdAt
	p.updatedAt = updatedAt
	return p, nil
}

// Validate ensures the product came from a constructor.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// Update replaces every editable attribute. On validation failure the product
// is left unchanged.
func (p *Product) Update(details Details, now time.Time) error {
	candidate := *p
	if err := candidate.apply(details); err != nil {
		return err
	}
	candidate.updatedAt = now
	*p = candidate
	return nil
}

// EnsureAvailable returns ErrProductIsNotAvailable for inactive products.
func (p *Product) EnsureAvailable() error {
	if !p.isActive {
		return ErrProductIsNotAvailable
	}
	return nil
}

func (p *Product) ID() kernel.UUID      { return p.id }
func (p *Product) Name() string         { return p.name }
func (p *Product) Description() string  { return p.description }
func (p *Product) Price() kernel.Money  { return p.price }
func (p *Product) ImageURL() string     { return p.imageURL }
func (p *Product) Category() Category   { return p.category }
func (p *Product) IsActive() bool       { return p.isActive }
func (p *Product) CreatedAt() time.Time { return p.createdAt }
func (p *Product) UpdatedAt() time.Time { return p.updatedAt }

// Details returns the editable attributes.
func (p *Product) Details() Details {
	return Details{
		Name:        p.name,
		Description: p.description,
		Price:       p.price.Yen(),
		ImageURL:    p.imageURL,
		Category:    p.category,
		IsActive:    p.isActive,
	}
}

func (p *Product) apply(d Details) error {
	return errors.Join(
		p.setName(d.Name),
		p.setDescription(d.Description),
		p.setPrice(d.Price),
		p.setImageURL(d.ImageURL),
		p.setCategory(d.Category),
		p.setActive(d.IsActive),
	)
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	cleaned := cleanText(name)
	if cleaned == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if n := utf8.RuneCountInString(cleaned); n > MaxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", n, 1, MaxNameLength)
	}
	p.name = cleaned
	return nil
}

func (p *Product) setDescription(description string) error {
	cleaned := cleanText(description)
	if n := utf8.RuneCountInString(cleaned); n > MaxDescriptionLength {
		return errs.NewValueIsOutOfRangeError("description length", n, 0, MaxDescriptionLength)
	}
	p.description = cleaned
	return nil
}

func (p *Product) setPrice(yen int64) error {
	if yen > MaxPrice {
		return errs.NewValueIsOutOfRangeError("price", yen, 0, MaxPrice)
	}
	price, err := kernel.NewMoney(yen)
	if err != nil {
		return errs.NewValueIsOutOfRangeErrorWithCause("price", yen, 0, MaxPrice, err)
	}
	p.price = price
	return nil
}

func (p *Product) setImageURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		p.imageURL = ""
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("imageUrl", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errs.NewValueIsInvalidErrorWithCause("imageUrl", fmt.Errorf("%q is not an absolute http(s) URL", raw))
	}
	p.imageURL = u.String()
	return nil
}

func (p *Product) setCategory(c Category) error {
	parsed, err := ParseCategory(string(c))
	if err != nil {
		return err
	}
	p.category = parsed
	return nil
}

func (p *Product) setActive(active bool) error {
	p.isActive = active
	return nil
}

// cleanText strips markup, unescapes the entities bluemonday produces and
// folds full-width ASCII so "ＢＬＴ" and "BLT" compare equal.
func cleanText(s string) string {
	stripped := html.UnescapeString(textPolicy.Sanitize(s))
	return strings.TrimSpace(norm.NFKC.String(stripped))
}
