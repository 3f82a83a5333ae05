package renderer

import (
	"fmt"

	"github.com/etnz/clerk"
)

// Record renders a transaction record to a one-line string.
func Record(rec clerk.Record) string {
	switch rec.Type {
	case clerk.KindBuy:
		return fmt.Sprintf("%s: bought %d units of %s in %s for %s", rec.Date, rec.Units, rec.Name, rec.Account, rec.Total.Display())
	case clerk.KindSell:
		return fmt.Sprintf("%s: sold %d units of %s from %s for %s", rec.Date, rec.Units, rec.Name, rec.Account, rec.Total.Display())
	case clerk.KindTransfer:
		return fmt.Sprintf("%s: transferred %d units of %s from %s to %s", rec.Date, rec.Units, rec.Name, rec.Account, rec.XferAccount)
	case clerk.KindContribute:
		return fmt.Sprintf("%s: contributed %s to %s", rec.Date, rec.Total.Display(), rec.Account)
	case clerk.KindContributionLimit:
		return fmt.Sprintf("%s: contribution limit raised by %s for %s", rec.Date, rec.Total.Display(), rec.Account)
	case clerk.KindDividend:
		return fmt.Sprintf("%s: dividend of %s from %d units of %s in %s", rec.Date, rec.Total.Display(), rec.Units, rec.Name, rec.Account)
	case clerk.KindWithdraw:
		return fmt.Sprintf("%s: withdrew %s from %s", rec.Date, rec.Total.Display(), rec.Account)
	default:
		return fmt.Sprintf("%s: %s %s", rec.Date, rec.Type, rec.Name)
	}
}
