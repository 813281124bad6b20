package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

// Location resolve um timezone IANA com fallback para o padrão da rede.
// Datas de agendamento só fazem sentido no timezone da filial.
func Location(tz string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
