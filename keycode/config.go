package keycode

import (
	"log"
)

// NewTranslatorFromConfig builds a translator from the platform and
// fallback settings, defaulting to the host table.
func NewTranslatorFromConfig() (*Translator, error) {
	ViperSetDefault("platform", HostTableName())
	ViperSetDefault("fallback", FallbackZero.String())

	table, err := TableFor(ViperGetString("platform"))
	if err != nil {
		return nil, Fatal(err)
	}
	fallback, err := ParseFallbackPolicy(ViperGetString("fallback"))
	if err != nil {
		return nil, Fatal(err)
	}
	if ViperGetBool("verbose") {
		log.Printf("key table: %s platform=%s rows=%d fallback=%s\n", table.Name(), table.Platform(), len(table.rows), fallback)
	}
	return NewTranslator(table, WithFallback(fallback)), nil
}
