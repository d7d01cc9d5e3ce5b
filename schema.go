package boavista

import (
	"fmt"
	"sort"
)

// Group is an entry of the group schema table: the layout of the
// type-specific fields of one record type.
type Group struct {
	Code   string
	Name   string
	Widths []int
}

// Len returns the total width of the type-specific fields.
func (g Group) Len() int {
	var n int
	for _, w := range g.Widths {
		n += w
	}
	return n
}

// Keys returns the record keys the group's fields are stored under.
// The first type-specific field is "04"; "01" to "03" hold the record
// framing.
func (g Group) Keys() []string {
	keys := make([]string, len(g.Widths))
	for i := range g.Widths {
		keys[i] = fieldKey(firstGroupField + i)
	}
	return keys
}

func (g Group) clone() Group {
	g.Widths = append([]int(nil), g.Widths...)
	return g
}

const firstGroupField = 4

func fieldKey(n int) string {
	return fmt.Sprintf("%02d", n)
}

func group(code, name string, widths ...int) Group {
	return Group{Code: code, Name: name, Widths: widths}
}

// groups is the group schema table. A single wrong width here shifts
// every record that follows it in a response, so widths must match the
// service's layout exactly.
var groups = map[string]Group{}

func init() {
	for _, g := range []Group{
		// 100: three-part summary block.
		group("100", "summary", 11, 11, 5),
		// 101: code, description, complement.
		group("101", "description", 10, 50, 4),
		// 111: total, first consultation, last consultation.
		group("111", "consultation summary", 5, 8, 8),
		// 123: alert text, alert type.
		group("123", "alert", 79, 2),
		// 124: document type, document, occurrence date, availability date,
		// currency, amount, contract flag, informant, guarantor flag,
		// city, state, situation.
		group("124", "debt", 2, 22, 8, 8, 4, 11, 1, 36, 1, 30, 2, 1),
		// 126: consultation kind, date, informant.
		group("126", "consultation", 2, 8, 36),
		// 127: area code, phone.
		group("127", "phone", 4, 9),
		// 128: code, message.
		group("128", "message", 5, 90),
		// 141: total, first debt, last debt, currency, accumulated amount.
		group("141", "debt summary", 8, 8, 8, 4, 13),
		// 142: document type, occurrence date, availability date, currency,
		// amount, city, state.
		group("142", "protest", 2, 8, 8, 4, 11, 30, 2),
		// 146: total, state, initial period, final period, currency,
		// accumulated amount.
		group("146", "protest summary", 8, 2, 8, 8, 4, 13),
		// 211: occurrence type, document type, document, bank, branch,
		// account, cheque, reason, occurrence date, availability date,
		// informant, indicator.
		group("211", "cheque occurrence", 1, 1, 14, 3, 4, 15, 8, 2, 8, 8, 36, 1),
		// 212: bank, branch, account, document type, document.
		group("212", "cheque account", 3, 4, 15, 1, 14),
		// 213: document type, document, indicator.
		group("213", "cheque document", 1, 14, 1),
		// 219: document, bank, branch, account, first cheque, last cheque,
		// reason, indicator.
		group("219", "cheque sequence", 14, 3, 4, 15, 8, 8, 1, 1),
		// 222: document, name, complement, document type, date.
		group("222", "name", 14, 55, 55, 1, 10),
		// 223: area code, phone, document type, document, address, district,
		// complement, postal code, city, state.
		group("223", "phone owner", 4, 9, 1, 14, 60, 50, 28, 8, 30, 2),
		// 224: bank, bank name, branch, branch name, address, district,
		// postal code, city, state, area code, phone prefix, phone, fax,
		// complement.
		group("224", "bank branch", 3, 40, 4, 40, 55, 30, 8, 30, 2, 4, 2, 9, 9, 40),
		// 227: postal code, address, district, city, state.
		group("227", "address", 8, 60, 28, 30, 2),
		// 242: document type, document, name, then four pairs of
		// consultation count and date.
		group("242", "cheque consultations", 1, 14, 50, 3, 4, 3, 8, 3, 8, 3, 8, 3, 8),
		// 244: document type, document, bank, branch, account, first cheque,
		// last cheque, reason, occurrence date, availability date,
		// currency, amount, informant, city, state.
		group("244", "returned cheque", 1, 14, 3, 4, 15, 8, 8, 2, 8, 8, 4, 11, 36, 20, 2),
		// 245: like 244 without city and state.
		group("245", "stopped cheque", 1, 14, 3, 4, 15, 8, 8, 2, 8, 8, 4, 11, 36),
		// 246: document type, document, bank, branch, account, first cheque,
		// last cheque, code, indicator.
		group("246", "cheque alert", 1, 14, 3, 4, 15, 8, 8, 6, 1),
		// 247: bank, branch, account, document type, document, date, time.
		group("247", "cheque holder", 3, 4, 15, 1, 14, 8, 6),
		// 249: name, document, birth date, mother's name, voter id,
		// condition, consultation date, consultation time, protocol.
		group("249", "identification", 60, 11, 8, 50, 13, 1, 8, 6, 20),
		// 254: document type, document, total, first occurrence, last
		// occurrence.
		group("254", "cheque occurrence summary", 1, 14, 5, 8, 8),
		// 256: document type, document, total, initial period, final period.
		group("256", "cheque consultation summary", 1, 14, 5, 8, 8),
		// 268: document type, document, total, first return, last return.
		group("268", "returned cheque summary", 1, 14, 5, 8, 8),
		// 300: code, branch, account, first date, last date.
		group("300", "company summary", 5, 4, 17, 8, 8),
		// 301: document type, company name, trade name, foundation date,
		// registration date, registry, state, activity code, activity,
		// legal nature, situation, document.
		group("301", "company", 2, 50, 25, 8, 8, 20, 2, 4, 15, 1, 1, 14),
		// 303: total, first date, last date.
		group("303", "company consultation summary", 5, 8, 8),
		// 304: consultation kind, date, informant.
		group("304", "company consultation", 2, 8, 40),
		// 601: score type, score, execution plan, plan model, plan name,
		// score model, score name, numeric class, letter class,
		// probability, probability text, nature code, nature description,
		// nature text.
		group("601", "score", 1, 4, 1, 2, 40, 2, 40, 2, 1, 5, 200, 3, 55, 90),
		// 901: indicator, message.
		group("901", "notice", 1, 130),
		// 940: code, message.
		group("940", "complement", 3, 200),
	} {
		groups[g.Code] = g
	}
}

// LookupGroup returns the schema of the given record type. ok is false
// for types outside the table, including ErrorType.
func LookupGroup(code string) (g Group, ok bool) {
	g, ok = groups[code]
	return g.clone(), ok
}

// Groups returns the whole table ordered by type code.
func Groups() []Group {
	out := make([]Group, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
