package ingest

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"

	"github.com/castlewood/finsight/internal/model"
)

// ParseOFX reads transactions from an OFX/QFX bank statement. Amounts are
// normalized to non-negative values; credits are recorded under the reserved
// income category. OFX carries no spending categories, so everything else
// lands in "other" until the user recategorizes.
func ParseOFX(r io.Reader) ([]model.Transaction, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(preprocessOFX(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var transactions []model.Transaction
	for _, msg := range resp.Bank {
		stmt, ok := msg.(*ofxgo.StatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		for _, ofxTx := range stmt.BankTranList.Transactions {
			transactions = append(transactions, convertOFXTransaction(ofxTx))
		}
	}
	for _, msg := range resp.CreditCard {
		stmt, ok := msg.(*ofxgo.CCStatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		for _, ofxTx := range stmt.BankTranList.Transactions {
			transactions = append(transactions, convertOFXTransaction(ofxTx))
		}
	}

	slog.Info("Parsed OFX file", "total_transactions", len(transactions))

	sortByDate(transactions)
	return transactions, nil
}

// convertOFXTransaction maps one OFX entry onto the domain model.
func convertOFXTransaction(ofxTx ofxgo.Transaction) model.Transaction {
	amount, _ := ofxTx.TrnAmt.Float64()

	txn := model.Transaction{
		Date:        ofxTx.DtPosted.Time,
		Description: describeOFX(ofxTx),
	}

	// OFX uses negative amounts for debits and positive for credits.
	if amount < 0 {
		txn.Amount = -amount
		txn.Category = model.CategoryOther
	} else {
		txn.Amount = amount
		txn.Category = model.CategoryIncome
	}

	return txn
}

func describeOFX(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return string(tx.Payee.Name)
	}
	if tx.Name != "" {
		return string(tx.Name)
	}
	return string(tx.Memo)
}

// preprocessOFX fixes common formatting issues in OFX files before parsing:
// stray leading whitespace, mixed-case SEVERITY values and SGML-style tags
// missing their closing bracket.
func preprocessOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")

	severityRegex := regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)

	tagFixRegex := regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
	content = tagFixRegex.ReplaceAllString(content, "$1>")

	return content
}
