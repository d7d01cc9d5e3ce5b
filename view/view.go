// Package view turns decoded records into display values: formatted dates,
// hours and amounts, and labels in place of the service's codes.
package view

import (
	"strings"

	"github.com/ianlopshire/go-boavista"
)

// FormatDate formats a DDMMYYYY date as DD/MM/YYYY. Values of any other
// length are returned unchanged.
func FormatDate(s string) string {
	if len(s) != 8 {
		return s
	}
	return s[:2] + "/" + s[2:4] + "/" + s[4:]
}

// FormatHour formats a HHMMSS time as HH:MM:SS. Values of any other
// length are returned unchanged.
func FormatHour(s string) string {
	if len(s) != 6 {
		return s
	}
	return s[:2] + ":" + s[2:4] + ":" + s[4:]
}

// FormatDecimal formats an implied two-decimal amount with a decimal
// comma, so "123456" becomes "1234,56". Leading zeros of the integer part
// are dropped. Empty and non-numeric values are returned unchanged.
func FormatDecimal(s string) string {
	if s == "" || strings.Trim(s, "0123456789") != "" {
		return s
	}
	for len(s) < 3 {
		s = "0" + s
	}
	whole := strings.TrimLeft(s[:len(s)-2], "0")
	if whole == "" {
		whole = "0"
	}
	return whole + "," + s[len(s)-2:]
}

var conditions = map[string]string{
	"1": "Regular",
	"2": "Cancelado",
	"3": "Pendente",
	"4": "Suspenso",
	"5": "Inexistente",
	"6": "Dados Incompletos",
	"7": "Nula",
	"8": "Não especificado",
}

// Condition returns the label of a registration condition code.
func Condition(code string) string {
	if label, ok := conditions[code]; ok {
		return label
	}
	return "Indefinido"
}

// AlertType returns the label of an alert type code.
func AlertType(code string) string {
	switch code {
	case "01", "90":
		return "Alerta de documentos"
	case "02":
		return "Observações"
	default:
		return "Erro ao acessar a base operadora"
	}
}

// OccurrenceType returns the label of a cheque occurrence type code.
func OccurrenceType(code string) string {
	if code == "1" {
		return "Cheque"
	}
	return "Talão"
}

// DocumentType returns "CPF" for individuals and "CNPJ" otherwise.
func DocumentType(code string) string {
	if code == "1" {
		return "CPF"
	}
	return "CNPJ"
}

var indicators = map[string]string{
	"1": "o Docto, Bco, Ag, C/C e Chq Informados",
	"2": "o Docto, Bco, C/C e Chq informados, com a ag diferente da Informada",
	"3": "o Docto e Bco Informados, com a Ag e/ou c/c diferente da informada",
}

// Indicator returns the label of a cheque match indicator.
func Indicator(code string) string {
	if label, ok := indicators[code]; ok {
		return label
	}
	return "o Bco, Ag e C/C informados, com outro documento diferente do informado"
}

// ScoreType returns "PF" for individuals and "PJ" otherwise.
func ScoreType(code string) string {
	if code == "1" {
		return "PF"
	}
	return "PJ"
}

// Option returns "Sim" for "S" and "Não" otherwise.
func Option(code string) string {
	if code == boavista.Populated {
		return "Sim"
	}
	return "Não"
}

type field struct {
	key    string
	label  string
	format func(string) string
}

func raw(key, label string) field { return field{key, label, nil} }

var sections = map[string][]field{
	"111": {
		raw("04", "total"),
		{"05", "data_primeira_consulta", FormatDate},
		{"06", "data_ultima_consulta", FormatDate},
	},
	"123": {
		raw("04", "texto"),
		{"05", "tipo", AlertType},
	},
	"127": {
		raw("04", "ddd"),
		raw("05", "telefone"),
	},
	"141": {
		raw("04", "total"),
		{"05", "data_primeiro_debito", FormatDate},
		{"06", "data_ultimo_debito", FormatDate},
		raw("07", "moeda"),
		{"08", "valor_acumulado", FormatDecimal},
	},
	"146": {
		raw("04", "total"),
		raw("05", "uf"),
		{"06", "periodo_inicial", FormatDate},
		{"07", "periodo_final", FormatDate},
		raw("08", "moeda"),
		{"09", "valor_acumulado", FormatDecimal},
	},
	"211": {
		{"04", "tipo_de_ocorrencia", OccurrenceType},
		{"05", "tipo_de_documento", DocumentType},
		raw("06", "numero_do_documento"),
		raw("07", "banco"),
		raw("08", "agencia"),
		raw("09", "conta_corrente"),
		raw("10", "cheque"),
		raw("11", "alinea"),
		{"12", "data_da_ocorrencia", FormatDate},
		{"13", "data_da_disponibilizacao", FormatDate},
		raw("14", "informante"),
		{"15", "indicador", Indicator},
	},
	"249": {
		raw("04", "nome"),
		raw("05", "cpf"),
		{"06", "data_de_nascimento", FormatDate},
		raw("07", "nome_da_mae"),
		raw("08", "titulo_de_eleitor"),
		{"09", "condicao", Condition},
		{"10", "data_da_consulta", FormatDate},
		{"11", "hora_da_consulta", FormatHour},
		raw("12", "protocolo"),
	},
	"254": documentSummary("data_primeira_ocorrencia", "data_ultima_ocorrencia"),
	"256": documentSummary("periodo_inicial", "periodo_final"),
	"268": documentSummary("data_primeira_devolucao", "data_ultima_devolucao"),
	"601": {
		{"04", "tipo_de_score", ScoreType},
		raw("05", "score"),
		{"06", "plano_de_execucao", Option},
		raw("07", "modelo_plano"),
		raw("08", "nome_plano"),
		raw("09", "modelo_score"),
		raw("10", "nome_score"),
		raw("11", "classificacao_numerica"),
		raw("12", "classificacao_alfabetica"),
		{"13", "probabilidade", FormatDecimal},
		raw("14", "texto_probabilidade"),
		raw("15", "codigo_natureza_modelo"),
		raw("16", "descricao_natureza"),
		raw("17", "texto_natureza"),
	},
}

// 254, 256 and 268 share a layout and differ in their date labels.
func documentSummary(first, last string) []field {
	return []field{
		{"04", "tipo_do_documento", DocumentType},
		raw("05", "numero_documento"),
		raw("06", "total"),
		{"07", first, FormatDate},
		{"08", last, FormatDate},
	}
}

// Section returns the display values of rec keyed by label. It returns
// nil for record types without a display layout and for records that
// carry no fields.
func Section(rec boavista.Record) map[string]string {
	fields, ok := sections[rec.Type]
	if !ok || !rec.Populated() {
		return nil
	}
	m := make(map[string]string, len(fields))
	for _, f := range fields {
		v := rec.Get(f.key)
		if f.format != nil {
			v = f.format(v)
		}
		m[f.label] = v
	}
	return m
}

// Sections returns the display values of every record of the given type,
// in the order they were received.
func Sections(resp *boavista.Response, code string) []map[string]string {
	var out []map[string]string
	for _, rec := range resp.Get(code) {
		if s := Section(rec); s != nil {
			out = append(out, s)
		}
	}
	return out
}

// Has reports whether resp holds a record of the given type that is not
// flagged "N".
func Has(resp *boavista.Response, code string) bool {
	return resp.Has(code)
}

// Labelled reports whether records of the given type have a display
// layout.
func Labelled(code string) bool {
	_, ok := sections[code]
	return ok
}

// Rejection returns the message of the service's error record, if any.
func Rejection(resp *boavista.Response) (message string, ok bool) {
	rec, ok := resp.Get(boavista.ErrorType).First()
	if !ok {
		return "", false
	}
	return rec.Message, true
}
