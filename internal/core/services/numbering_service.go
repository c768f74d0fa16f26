package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	portsrepo "github.com/logiport/logiport_backend/internal/core/ports/repositories"
	portssvc "github.com/logiport/logiport_backend/internal/core/ports/services"
)

// docPrefixes maps a document code to the reference prefix used in document
// numbering and file naming.
var docPrefixes = map[string]string{
	"invoice":                          "INV",
	"invoice.normal":                   "INV",
	"invoice.commercial":               "INV-COM",
	"invoice.foreign.commercial":       "INV-COM",
	"invoice.proforma":                 "INV-PRO",
	"invoice.syrian.entry":             "INV-SE",
	"invoice.syrian.transit":           "INV-ST",
	"invoice.syrian.intermediary":      "INV-SI",
	"packing_list":                     "PKL",
	"packing_list.export.simple":       "PKL",
	"packing_list.export.with_dates":   "PKL",
	"packing_list.export.with_line_id": "PKL",
	"certificate_of_origin":            "COO",
	"form_a":                           "FORMA",
	"form.a":                           "FORMA", // alias
	"cmr":                              "CMR",
}

const maxGapScan = 10000 // bound the free-number probe

// numberingService assigns transaction numbers without gaps growing
// unbounded: deleted numbers are reused, but the counter never moves behind
// a number still present.
type numberingService struct {
	numberingRepo portsrepo.NumberingRepositoryFacade
	prefix        string // optional prefix on transaction numbers, e.g. "T"
}

// NewNumberingService creates a new numbering service. prefix may be empty.
func NewNumberingService(numberingRepo portsrepo.NumberingRepositoryFacade, prefix string) portssvc.NumberingSvcFacade {
	return &numberingService{numberingRepo: numberingRepo, prefix: prefix}
}

var _ portssvc.NumberingSvcFacade = (*numberingService)(nil)

// PrefixForDocCode returns the reference prefix for a document code.
// Unknown codes derive a prefix from their last dotted segment.
func (s *numberingService) PrefixForDocCode(docCode string) string {
	if prefix, ok := docPrefixes[docCode]; ok {
		return prefix
	}
	parts := strings.Split(docCode, ".")
	derived := strings.ToUpper(parts[len(parts)-1])
	if len(derived) > 6 {
		derived = derived[:6]
	}
	return derived
}

// NextTransactionNumber reserves the next free number. It takes the larger
// of the stored counter and the highest number actually assigned, then
// probes forward past numbers still in use, so deleted numbers are reclaimed
// but live ones are never reissued.
func (s *numberingService) NextTransactionNumber(ctx context.Context) (string, error) {
	stored, err := s.numberingRepo.GetLastNumber(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read last transaction number: %w", err)
	}
	assigned, err := s.numberingRepo.MaxAssignedNumber(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read max assigned transaction number: %w", err)
	}

	last := stored
	if assigned > last {
		last = assigned
	}

	candidate := last + 1
	for i := 0; i < maxGapScan; i++ {
		exists, err := s.numberingRepo.NumberExists(ctx, s.format(candidate))
		if err != nil {
			return "", fmt.Errorf("failed to probe transaction number %d: %w", candidate, err)
		}
		if !exists {
			break
		}
		candidate++
	}

	if err := s.numberingRepo.SaveLastNumber(ctx, candidate); err != nil {
		return "", fmt.Errorf("failed to persist last transaction number: %w", err)
	}
	return s.format(candidate), nil
}

// SyncLastNumber realigns the stored counter with the highest number still
// assigned. Called after deletions so freed numbers become reusable. The
// counter is only ever lowered to the actual maximum, never below it.
func (s *numberingService) SyncLastNumber(ctx context.Context) (int64, error) {
	assigned, err := s.numberingRepo.MaxAssignedNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read max assigned transaction number: %w", err)
	}
	if err := s.numberingRepo.SaveLastNumber(ctx, assigned); err != nil {
		return 0, fmt.Errorf("failed to persist last transaction number: %w", err)
	}
	return assigned, nil
}

func (s *numberingService) format(n int64) string {
	if s.prefix == "" {
		return strconv.FormatInt(n, 10)
	}
	return s.prefix + strconv.FormatInt(n, 10)
}
