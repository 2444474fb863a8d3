package req

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gorilla/schema"
)

type queryParamDecoder struct {
	*schema.Decoder
}

func newQueryParamDecoder() queryParamDecoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)

	return queryParamDecoder{dec}
}

// decode fills structPtr from vals, translating errors from *schema.Decoder.
func (d queryParamDecoder) decode(structPtr any, vals map[string][]string) error {
	if v := reflect.ValueOf(structPtr); v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: decode called with %T", ErrBadAny, structPtr)
	}

	if err := d.Decode(structPtr, vals); err != nil {
		return translateDecoderError(err)
	}

	return nil
}

// translateDecoderError converts an error returned by *schema.Decoder into standardized errors.
// Some *schema.Decoder errors are issues with calling code;
// others are mismatches between a request's query params and the expected shape.
func translateDecoderError(err error) error {
	var pkgErrs schema.MultiError
	if !errors.As(err, &pkgErrs) {
		return fmt.Errorf("%w: %s", ErrBadFormat, err)
	}

	var validErrs ValidationErrors
	for _, pkgErr := range pkgErrs {
		switch err := pkgErr.(type) {
		case schema.ConversionError:
			// NOTE: Index is -1 for non-slice values.
			validErrs = append(validErrs, ValidationError{
				Field: err.Key,
				Got:   fmt.Sprintf("bad value at index %d", max(0, err.Index)),
				Rule:  "must be " + err.Type.String(),
			})

		case schema.EmptyFieldError:
			return fmt.Errorf(`%w: use validate tags to set "required" fields, not schema`, ErrNotImplemented)

		case schema.UnknownKeyError:
			validErrs = append(validErrs, ValidationError{
				Field: err.Key,
				Got:   "value is set",
				Rule:  "unexpected key should not be set",
			})

		default:
			// NOTE: a field without a registered schema.Converter
			// only errors once a request sets its key.
			if strings.Contains(err.Error(), "schema: converter not found for") {
				return fmt.Errorf("%w: cannot convert values into unsupported type", ErrNotImplemented)
			}

			return fmt.Errorf("%w: %s", ErrUnexpected, err)
		}
	}

	return validErrs
}
