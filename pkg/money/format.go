package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter форматирует суммы в песо для отображения на сайте
type Formatter struct {
	printer *message.Printer
}

// NewFormatter создает форматтер для указанной локали (например, "es-MX")
func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse("es-MX")
	}
	return &Formatter{printer: message.NewPrinter(tag)}
}

// Format возвращает сумму с разделителями разрядов и знаком "$"
func (f *Formatter) Format(amount int64) string {
	return f.printer.Sprintf("$%d", amount)
}
