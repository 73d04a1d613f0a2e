package encode

import "github.com/zachlisp/go-zachlisp/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// EncodeSorted prints map entries and set elements ordered by
// form.Compare instead of insertion order.
func EncodeSorted(v bool) EncodeOption {
	return func(es *EncState) { es.sorted = v }
}
