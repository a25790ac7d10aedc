// Package ofx parses OFX/QFX statement downloads into normalized
// transactions. OFX amounts are already signed the way the rest of the
// pipeline expects (negative = money out), so no sign correction runs here.
package ofx

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"

	"github.com/glei1339/FinLens/internal/common"
	"github.com/glei1339/FinLens/internal/institution"
	"github.com/glei1339/FinLens/internal/model"
)

// Statement is the parsed content of one OFX/QFX file.
type Statement struct {
	Institution  string
	AccountLast4 string
	Transactions []model.Transaction
}

var (
	severityRe = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	openTagRe  = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
	dateLeadRe = regexp.MustCompile(`^\d{2}/\d{2}\s+`)
)

// preprocess fixes common formatting defects in bank-produced OFX files:
// leading blank lines, mixed-case SEVERITY values, and SGML-style opening
// tags missing their closing bracket.
func preprocess(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityRe.ReplaceAllStringFunc(content, strings.ToUpper)
	content = openTagRe.ReplaceAllString(content, "$1>")
	return content
}

// Parse reads an OFX/QFX file and returns its statement. Both bank and
// credit card statement blocks are collected into one transaction list.
func Parse(fileName string, data []byte) (*Statement, error) {
	resp, err := ofxgo.ParseResponse(strings.NewReader(preprocess(string(data))))
	if err != nil {
		return nil, common.NewUserError(
			fmt.Sprintf("could not read %s: the file does not look like a valid OFX/QFX download", fileName),
			fmt.Errorf("parsing ofx: %w", err),
		)
	}

	st := &Statement{Institution: strings.TrimSpace(string(resp.Signon.Org))}
	if st.Institution == "" {
		st.Institution = institution.FromFilename(fileName)
	}

	for _, msg := range resp.Bank {
		stmt, ok := msg.(*ofxgo.StatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		st.noteAccount(string(stmt.BankAcctFrom.AcctID))
		for _, tx := range stmt.BankTranList.Transactions {
			st.append(tx, fileName)
		}
	}
	for _, msg := range resp.CreditCard {
		stmt, ok := msg.(*ofxgo.CCStatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		st.noteAccount(string(stmt.CCAcctFrom.AcctID))
		for _, tx := range stmt.BankTranList.Transactions {
			st.append(tx, fileName)
		}
	}

	// Stamp after all blocks are parsed, so rows from a block with a
	// digit-free account ID still pick up a later block's number.
	for i := range st.Transactions {
		st.Transactions[i].AccountLast4 = st.AccountLast4
	}

	if len(st.Transactions) == 0 {
		return st, common.NewUserError(
			fmt.Sprintf("no transactions found in %s", fileName),
			common.ErrNoTransactions,
		)
	}
	return st, nil
}

// noteAccount records the last 4 digits of the first account ID that
// carries any.
func (st *Statement) noteAccount(acctID string) {
	if st.AccountLast4 != "" {
		return
	}
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, acctID)
	if digits == "" {
		return
	}
	if len(digits) > 4 {
		digits = digits[len(digits)-4:]
	}
	st.AccountLast4 = digits
}

func (st *Statement) append(tx ofxgo.Transaction, fileName string) {
	amount, _ := tx.TrnAmt.Float64()
	st.Transactions = append(st.Transactions, model.Transaction{
		ID:          len(st.Transactions),
		Date:        tx.DtPosted.Time.Format("01/02/2006"),
		Description: merchantName(tx),
		Amount:      amount,
		Source:      fileName,
		Institution: st.Institution,
	})
}

// merchantName picks the cleanest description available: PAYEE when the
// bank filled it in, otherwise NAME, falling back to MEMO when NAME is one
// of the generic single-word placeholders some banks emit.
func merchantName(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return strings.TrimSpace(string(tx.Payee.Name))
	}
	name := strings.TrimSpace(string(tx.Name))
	if tx.Memo != "" && isGenericDescription(name) {
		name = strings.TrimSpace(string(tx.Memo))
	}
	return dateLeadRe.ReplaceAllString(name, "")
}

func isGenericDescription(name string) bool {
	switch strings.ToUpper(name) {
	case "DEBIT", "CREDIT", "PURCHASE", "PAYMENT", "POS TRANSACTION", "CARD PURCHASE":
		return true
	}
	return false
}
