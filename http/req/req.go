package req

import (
	"fmt"
	"net/url"
)

// A Parser decodes and validates request payloads.
type Parser struct {
	dec queryParamDecoder
	validator
}

// NewParser constructs a *Parser ignoring unknown query params.
func NewParser() *Parser {
	return &Parser{
		dec:       newQueryParamDecoder(),
		validator: newValidator(),
	}
}

// ParseQueryParams decodes into a pointer to a struct the query param data in *http.Request.URL.Query.
// If successful, ParseQueryParams runs validation against the contents,
// returning ValidationErrors if the data fails validation rules.
func (p *Parser) ParseQueryParams(params url.Values, structPtr any) error {
	if err := p.dec.decode(structPtr, params); err != nil {
		return fmt.Errorf("failed decoding request query params: %w", err)
	}

	if err := p.validate(structPtr); err != nil {
		return fmt.Errorf("%T failed validation: %w", structPtr, err)
	}

	return nil
}
