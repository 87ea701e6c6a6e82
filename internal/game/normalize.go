package game

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/FuriaPaladins/Hoyoverse-Data/internal/catalog"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/domain"
)

// Candidate is one normalized banner ready to merge, plus the diagnostics
// collected while building it.
type Candidate struct {
	StubID         string
	Classification Classification
	Record         domain.BannerRecord
	Title          string
	ImageURL       string
	Unknown        []UnknownDrop
	NameUnparsed   bool
}

// Normalize builds a candidate from a stub and its detail payload. Skipped
// stubs return a candidate with Classification.Skip set and no record.
func Normalize(a Adapter, stub domain.RawBannerStub, detail []byte, rosters catalog.Rosters) (Candidate, error) {
	if !gjson.ValidBytes(detail) {
		return Candidate{}, fmt.Errorf("%w: %s", domain.ErrUpstreamSchema, ErrMsgDetailNotObject)
	}
	doc := gjson.ParseBytes(detail)
	if !doc.IsObject() {
		return Candidate{}, fmt.Errorf("%w: %s", domain.ErrUpstreamSchema, ErrMsgDetailNotObject)
	}

	title := doc.Get(FieldTitle).String()
	c := Candidate{
		StubID:         stub.ID(),
		Classification: a.Classify(stub, title),
		Title:          title,
	}
	if c.Classification.Skip {
		return c, nil
	}

	five, four := a.DropFields()
	up5, unknown5, err := ParseDrops(a, doc.Get(five), rosters)
	if err != nil {
		return Candidate{}, fmt.Errorf("%s: %w", five, err)
	}
	up4, unknown4, err := ParseDrops(a, doc.Get(four), rosters)
	if err != nil {
		return Candidate{}, fmt.Errorf("%s: %w", four, err)
	}

	start, end, err := a.Window(stub.BeginTime(), stub.EndTime())
	if err != nil {
		return Candidate{}, fmt.Errorf("%w: %w", domain.ErrUpstreamSchema, err)
	}

	name := a.ResolveName(title)
	c.Record = domain.BannerRecord{
		Name:       name,
		BannerType: c.Classification.Code,
		Uprate5:    up5,
		Uprate4:    up4,
		StartTime:  start,
		EndTime:    end,
	}
	c.NameUnparsed = !name.Valid
	c.Unknown = append(unknown5, unknown4...)
	c.ImageURL = doc.Get(FieldBannerImage).String()
	return c, nil
}
