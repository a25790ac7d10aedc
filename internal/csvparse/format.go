package csvparse

// Format identifies a known bank CSV layout.
type Format string

const (
	FormatChaseChecking   Format = "chaseChecking"
	FormatChaseCreditCard Format = "chaseCreditCard"
	FormatCapitalOne      Format = "capitalOne"
	FormatBankOfAmerica   Format = "bankOfAmerica"
	FormatWellsFargo      Format = "wellsFargoPositional"
	FormatGeneric         Format = "generic"
)

// DetectFormat classifies a CSV header row into a known bank layout.
// Detection order matters: more specific layouts are checked before generic,
// and the Chase credit card branch short-circuits to generic when the
// type/balance columns are absent (a plain date/description/amount export is
// not assumed to be any particular bank).
func DetectFormat(headers []string) Format {
	h := normalizeHeaders(headers)
	has := func(key string) bool {
		for _, c := range h {
			if c == key {
				return true
			}
		}
		return false
	}

	// Chase checking: Details, Posting Date, Description, Amount, Type, Balance
	if has("posting date") && has("details") && has("description") {
		return FormatChaseChecking
	}

	// Chase credit card: Transaction Date, Post Date, Description, Category,
	// Type, Amount, or the older Date/Description/Amount/Type/Balance export.
	if has("transaction date") || (has("date") && has("description") && has("amount") && !has("debit")) {
		if has("type") && has("balance") {
			return FormatChaseCreditCard
		}
		if has("transaction date") && has("type") && has("category") {
			return FormatChaseCreditCard
		}
		return FormatGeneric
	}

	// Capital One: Transaction Date, Posted Date, Card No., Description,
	// Category, Debit, Credit (when "transaction date" is absent)
	if has("debit") && has("credit") && has("description") {
		return FormatCapitalOne
	}

	// Bank of America: Posted Date, Reference Number, Payee, Address, Amount
	if has("payee") && has("posted date") {
		return FormatBankOfAmerica
	}

	// Wells Fargo exports no header row; the first data row lands in the
	// header slot as a date plus placeholder columns.
	if len(h) >= 5 && (h[0] == "date" || h[0] == "") && hasPlaceholder(h) {
		return FormatWellsFargo
	}

	return FormatGeneric
}

// Institution maps a detected format to its issuer name.
func (f Format) Institution() string {
	switch f {
	case FormatChaseChecking, FormatChaseCreditCard:
		return "Chase"
	case FormatCapitalOne:
		return "Capital One"
	case FormatBankOfAmerica:
		return "Bank of America"
	case FormatWellsFargo:
		return "Wells Fargo"
	default:
		return "Unknown"
	}
}

func hasPlaceholder(h []string) bool {
	for _, c := range h {
		if c == "*" || c == "" {
			return true
		}
	}
	return false
}
