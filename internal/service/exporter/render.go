package exporter

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// utf8BOM префикс CSV/TXT, чтобы Excel и Блокнот открывали файл в UTF-8
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var csvHeader = []string{
	"Protocolo", "Data Emissão", "Nome Cliente", "CPF", "Telefone", "Email", "Endereço Cliente",
	"Barbearia", "CNPJ", "Telefone Barbearia", "Email Barbearia", "Endereço Barbearia",
	"Data Agendamento", "Serviço", "Valor", "Duração", "Profissionais", "Observações",
	"ID Agendamento", "ID Cliente", "ID Barbearia",
}

var htmlTemplate = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="UTF-8">
<title>Comprovante de Agendamento - {{.Protocol}}</title>
<style>
body { font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; color: #333; }
.header { text-align: center; border-bottom: 3px solid #2c3e50; padding-bottom: 20px; margin-bottom: 30px; }
.protocolo { background: #3498db; color: #fff; padding: 10px; border-radius: 5px; text-align: center; font-weight: bold; }
.section { margin-bottom: 25px; padding: 15px; border-left: 4px solid #3498db; background: #f8f9fa; }
.section h3 { margin-top: 0; color: #2c3e50; }
.info-row { margin: 8px 0; }
.label { font-weight: bold; display: inline-block; width: 150px; }
.footer { text-align: center; margin-top: 40px; font-size: 12px; color: #777; }
</style>
</head>
<body>
<div class="header">
<h1>Comprovante de Agendamento</h1>
<div class="protocolo">Protocolo: {{.Protocol}}</div>
<p>Emitido em: {{.IssuedAt}}</p>
</div>
<div class="section">
<h3>DADOS DO CLIENTE</h3>
<div class="info-row"><span class="label">Nome:</span> {{.CustomerName}}</div>
<div class="info-row"><span class="label">CPF:</span> {{.CustomerNationalID}}</div>
<div class="info-row"><span class="label">Telefone:</span> {{.CustomerPhone}}</div>
<div class="info-row"><span class="label">Email:</span> {{.CustomerEmail}}</div>
<div class="info-row"><span class="label">Endereço:</span> {{.CustomerAddress}}</div>
</div>
<div class="section">
<h3>DADOS DA BARBEARIA</h3>
<div class="info-row"><span class="label">Nome:</span> {{.ShopName}}</div>
<div class="info-row"><span class="label">CNPJ:</span> {{.ShopTaxID}}</div>
<div class="info-row"><span class="label">Telefone:</span> {{.ShopPhone}}</div>
<div class="info-row"><span class="label">Email:</span> {{.ShopEmail}}</div>
<div class="info-row"><span class="label">Endereço:</span> {{.ShopAddress}}</div>
</div>
<div class="section">
<h3>DADOS DO AGENDAMENTO</h3>
<div class="info-row"><span class="label">Data/Hora:</span> {{.DateTime}}</div>
<div class="info-row"><span class="label">Serviço:</span> {{.ServiceName}}</div>
<div class="info-row"><span class="label">Valor:</span> {{.Price}}</div>
<div class="info-row"><span class="label">Duração:</span> {{.Duration}}</div>
<div class="info-row"><span class="label">Profissionais:</span> {{.Staff}}</div>
</div>
<div class="section">
<h3>INFORMAÇÕES ADICIONAIS</h3>
<div class="info-row"><span class="label">Observações:</span> {{.Notes}}</div>
<div class="info-row"><span class="label">ID Agendamento:</span> {{.AppointmentID}}</div>
<div class="info-row"><span class="label">ID Cliente:</span> {{.CustomerID}}</div>
<div class="info-row"><span class="label">ID Barbearia:</span> {{.ShopID}}</div>
</div>
<div class="footer">
<p>Este é um comprovante gerado automaticamente.</p>
<p>Apresente este protocolo no dia do atendimento.</p>
</div>
</body>
</html>
`))

func renderHTML(v *documentView) (string, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderTXT(v *documentView) string {
	var b strings.Builder
	line := strings.Repeat("=", 50)

	b.WriteString("COMPROVANTE DE AGENDAMENTO\n")
	b.WriteString(line + "\n")
	fmt.Fprintf(&b, "Protocolo: %s\n", v.Protocol)
	fmt.Fprintf(&b, "Data de Emissão: %s\n\n", v.IssuedAt)

	b.WriteString("DADOS DO CLIENTE\n")
	fmt.Fprintf(&b, "Nome: %s\n", v.CustomerName)
	fmt.Fprintf(&b, "CPF: %s\n", v.CustomerNationalID)
	fmt.Fprintf(&b, "Telefone: %s\n", v.CustomerPhone)
	fmt.Fprintf(&b, "Email: %s\n", v.CustomerEmail)
	fmt.Fprintf(&b, "Endereço: %s\n\n", v.CustomerAddress)

	b.WriteString("DADOS DA BARBEARIA\n")
	fmt.Fprintf(&b, "Nome: %s\n", v.ShopName)
	fmt.Fprintf(&b, "CNPJ: %s\n", v.ShopTaxID)
	fmt.Fprintf(&b, "Telefone: %s\n", v.ShopPhone)
	fmt.Fprintf(&b, "Email: %s\n", v.ShopEmail)
	fmt.Fprintf(&b, "Endereço: %s\n\n", v.ShopAddress)

	b.WriteString("DADOS DO AGENDAMENTO\n")
	fmt.Fprintf(&b, "Data/Hora: %s\n", v.DateTime)
	fmt.Fprintf(&b, "Serviço: %s\n", v.ServiceName)
	fmt.Fprintf(&b, "Valor: %s\n", v.Price)
	fmt.Fprintf(&b, "Duração: %s\n", v.Duration)
	fmt.Fprintf(&b, "Profissionais: %s\n\n", v.Staff)

	b.WriteString("INFORMAÇÕES ADICIONAIS\n")
	fmt.Fprintf(&b, "Observações: %s\n", v.Notes)
	fmt.Fprintf(&b, "ID Agendamento: %s\n", v.AppointmentID)
	fmt.Fprintf(&b, "ID Cliente: %s\n", v.CustomerID)
	fmt.Fprintf(&b, "ID Barbearia: %s\n", v.ShopID)
	b.WriteString(line + "\n")

	return b.String()
}

// renderCSV строка заголовка и строка данных; все поля в кавычках,
// запятые в observações заменяются на ";"
func renderCSV(v *documentView) string {
	staff := notAvailable
	if len(v.StaffList) > 0 {
		staff = strings.Join(v.StaffList, "; ")
	}

	row := []string{
		v.Protocol, v.IssuedAt, v.CustomerName, v.CustomerNationalID, v.CustomerPhone, v.CustomerEmail, v.CustomerAddress,
		v.ShopName, v.ShopTaxID, v.ShopPhone, v.ShopEmail, v.ShopAddress,
		v.DateTime, v.ServiceName, v.PriceValue, v.Duration, staff, strings.ReplaceAll(v.Notes, ",", ";"),
		v.AppointmentID, v.CustomerID, v.ShopID,
	}

	return csvLine(csvHeader) + "\n" + csvLine(row) + "\n"
}

func csvLine(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}

// render рендерит документ в нужном формате
func render(v *documentView, format domain.DocumentFormat) (content string, payload []byte, err error) {
	switch format {
	case domain.FormatHTML:
		content, err = renderHTML(v)
		if err != nil {
			return "", nil, err
		}
		return content, []byte(content), nil
	case domain.FormatCSV:
		content = renderCSV(v)
	case domain.FormatTXT:
		content = renderTXT(v)
	default:
		return "", nil, domain.ErrUnsupportedFormat
	}
	payload = make([]byte, 0, len(utf8BOM)+len(content))
	payload = append(payload, utf8BOM...)
	payload = append(payload, content...)
	return content, payload, nil
}
