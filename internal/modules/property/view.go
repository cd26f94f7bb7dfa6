package property

import (
	"github.com/dustin/go-humanize"

	"staybook/internal/domain"
)

// DetailView is the display form of a property. Fields are passed through unchecked.
type DetailView struct {
	ID          string
	Name        string
	Description string
	Price       string
}

func NewDetailView(p domain.Property) DetailView {
	return DetailView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       FormatPrice(p.Price),
	}
}

// FormatPrice renders "Price: $1,250.5" style text. Thousands are grouped;
// the fraction is printed with as many digits as it needs.
func FormatPrice(price float64) string {
	return "Price: $" + humanize.Commaf(price)
}
