package core

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Форматирование сумм и дат повторяет фронтенд: Intl.NumberFormat("id-ID")
// с валютой IDR и toLocaleDateString("id-ID"). Результат предназначен только
// для показа - сравнения и сортировка идут по исходным значениям.

var idPrinter = message.NewPrinter(language.Indonesian)

var maxPrinterInt = decimal.NewFromInt(math.MaxInt64)

// FormatIDR форматирует сумму в рупиях для отображения: "Rp", целая часть
// с разделителями тысяч локали id-ID, дробная через запятую. Сумма не
// проходит через float, поэтому точность decimal сохраняется целиком.
func FormatIDR(amount decimal.Decimal) string {
	var b strings.Builder
	if amount.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString("Rp")

	abs := amount.Abs()
	intPart := abs.Truncate(0)
	if intPart.Cmp(maxPrinterInt) <= 0 {
		b.WriteString(idPrinter.Sprintf("%d", intPart.IntPart()))
	} else {
		b.WriteString(groupThousands(intPart.String()))
	}

	if frac := abs.Sub(intPart); !frac.IsZero() {
		b.WriteByte(',')
		b.WriteString(strings.TrimPrefix(frac.String(), "0."))
	}
	return b.String()
}

// groupThousands расставляет точки-разделители тысяч в строке из цифр.
// Нужна для сумм, не помещающихся в int64.
func groupThousands(digits string) string {
	var b strings.Builder
	for i := 0; i < len(digits); i++ {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(digits[i])
	}
	return b.String()
}

var monthsID = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatDateID форматирует дату длинной индонезийской формой: "2 Januari 2006".
// Нулевая дата дает пустую строку.
func FormatDateID(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d %s %d", t.Day(), monthsID[t.Month()-1], t.Year())
}
