package entity

import (
	"fmt"
	"strings"
	"time"
)

// Formatos de fecha y hora aceptados y devueltos por la API.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// CustomerRef referencia al cliente de una visita: cliente existente o cliente temporal.
// Exactamente una de las dos formas está presente.
type CustomerRef struct {
	IDCliente    string // ExistingCustomer
	NomeTemp     string // TemporaryCustomer
	TelefoneTemp string
}

// ExistingCustomer construye la referencia a un cliente registrado.
func ExistingCustomer(id string) CustomerRef { return CustomerRef{IDCliente: id} }

// TemporaryCustomer construye la referencia a un cliente no registrado.
func TemporaryCustomer(nome, telefone string) CustomerRef {
	return CustomerRef{NomeTemp: nome, TelefoneTemp: telefone}
}

// NewCustomerRef valida la forma de la referencia a partir de los campos crudos del cuerpo.
// Rechaza cuerpos ambiguos (id y nombre temporal) o vacíos.
func NewCustomerRef(idCliente, nomeTemp, telefoneTemp string) (CustomerRef, error) {
	idCliente = strings.TrimSpace(idCliente)
	nomeTemp = strings.TrimSpace(nomeTemp)
	switch {
	case idCliente != "" && nomeTemp != "":
		return CustomerRef{}, fmt.Errorf("informe id_cliente o nome_cliente_temp, não ambos")
	case idCliente != "":
		return ExistingCustomer(idCliente), nil
	case nomeTemp != "":
		return TemporaryCustomer(nomeTemp, strings.TrimSpace(telefoneTemp)), nil
	default:
		return CustomerRef{}, fmt.Errorf("id_cliente ou nome_cliente_temp é obrigatório")
	}
}

// IsTemporary indica si la visita es para un cliente no registrado.
func (r CustomerRef) IsTemporary() bool { return r.IDCliente == "" }

// Visit visita agendada (agr_visitas). Transición única: pendiente -> confirmada.
type Visit struct {
	ID              int64
	Data            time.Time // solo fecha
	Hora            string    // HH:MM
	Cliente         CustomerRef
	Observacao      string
	CodUsuario      string // representante dueño
	Confirmado      bool
	DataConfirmacao *time.Time

	// Campos de exhibición obtenidos por join.
	NomeCliente       string
	NomeRepresentante string
}

// DisplayName nombre a mostrar: cliente registrado o temporal.
func (v *Visit) DisplayName() string {
	if v.NomeCliente != "" {
		return v.NomeCliente
	}
	return v.Cliente.NomeTemp
}

// ParseDate valida una fecha YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("data inválida %q: use AAAA-MM-DD", s)
	}
	return d, nil
}

// ParseHour valida una hora HH:MM o HH:MM:SS y la normaliza a HH:MM.
func ParseHour(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{TimeLayout, "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(TimeLayout), nil
		}
	}
	return "", fmt.Errorf("hora inválida %q: use HH:MM", s)
}

// ParseRange valida un rango inclusivo de fechas con inicio <= fim.
func ParseRange(inicio, fim string) (time.Time, time.Time, error) {
	from, err := ParseDate(inicio)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := ParseDate(fim)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("inicio (%s) posterior a fim (%s)", inicio, fim)
	}
	return from, to, nil
}
