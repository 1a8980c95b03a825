// Package stats contiene la aritmética pura de calendario para las
// estadísticas de ventas: conversión medianoche-local ↔ instante UTC y
// resolución de ventanas [inicio, fin) con sus etiquetas por modo.
//
// Convención de signo del offset (minutos): UTC = local + offset, es decir,
// restar el offset a un instante UTC produce la hora de pared local. Un
// usuario en UTC-3 envía offset = +180 (misma convención que
// Date.getTimezoneOffset de JavaScript).
package stats

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tu-usuario/ventas-pro/internal/domain"
)

// Mode selecciona la granularidad del reporte.
type Mode string

const (
	ModeDay   Mode = "day"
	ModeWeek  Mode = "week"
	ModeMonth Mode = "month"
	ModeYear  Mode = "year"
)

// Límites del offset horario en minutos (±14 horas).
const (
	MinTzOffset = -840
	MaxTzOffset = 840
)

var (
	weekLabels  = []string{"Lun", "Mar", "Mié", "Jue", "Vie", "Sáb", "Dom"}
	monthLabels = []string{"Ene", "Feb", "Mar", "Abr", "May", "Jun", "Jul", "Ago", "Sep", "Oct", "Nov", "Dic"}
)

// Timeframe es una ventana [StartUTC, EndUTC) con una etiqueta por bucket.
type Timeframe struct {
	StartUTC time.Time
	EndUTC   time.Time
	Labels   []string
}

// LocalMidnightUTC convierte la medianoche local de (año, mes, día) al
// instante UTC correspondiente según el offset en minutos.
func LocalMidnightUTC(year int, month time.Month, day, tzOffsetMin int) time.Time {
	utcMidnight := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return utcMidnight.Add(time.Duration(tzOffsetMin) * time.Minute)
}

// ValidateTzOffset verifica que el offset esté dentro de ±14 horas.
func ValidateTzOffset(tzOffsetMin int) error {
	if tzOffsetMin < MinTzOffset || tzOffsetMin > MaxTzOffset {
		return fmt.Errorf("%w: tzOffset fuera de rango [%d, %d]", domain.ErrInvalidInput, MinTzOffset, MaxTzOffset)
	}
	return nil
}

// Resolve calcula la ventana UTC y las etiquetas para un modo y un anchor.
// Gramática del anchor: day/week YYYY-MM-DD, month YYYY-MM, year YYYY.
func Resolve(mode Mode, anchor string, tzOffsetMin int) (Timeframe, error) {
	if err := ValidateTzOffset(tzOffsetMin); err != nil {
		return Timeframe{}, err
	}

	switch mode {
	case ModeDay:
		y, m, d, err := parseYMD(anchor)
		if err != nil {
			return Timeframe{}, err
		}
		start := LocalMidnightUTC(y, m, d, tzOffsetMin)
		labels := make([]string, 24)
		for i := range labels {
			labels[i] = fmt.Sprintf("%02d", i)
		}
		return Timeframe{StartUTC: start, EndUTC: start.Add(24 * time.Hour), Labels: labels}, nil

	case ModeWeek:
		y, m, d, err := parseYMD(anchor)
		if err != nil {
			return Timeframe{}, err
		}
		// Lunes como inicio de semana: retroceder (weekday+6)%7 días locales.
		anchorUTC := LocalMidnightUTC(y, m, d, tzOffsetMin)
		anchorLocal := anchorUTC.Add(-time.Duration(tzOffsetMin) * time.Minute)
		diffToMonday := (int(anchorLocal.Weekday()) + 6) % 7
		start := anchorUTC.AddDate(0, 0, -diffToMonday)
		labels := make([]string, len(weekLabels))
		copy(labels, weekLabels)
		return Timeframe{StartUTC: start, EndUTC: start.AddDate(0, 0, 7), Labels: labels}, nil

	case ModeMonth:
		y, m, err := parseYM(anchor)
		if err != nil {
			return Timeframe{}, err
		}
		start := LocalMidnightUTC(y, m, 1, tzOffsetMin)
		nextY, nextM := y, m+1
		if m == time.December {
			nextY, nextM = y+1, time.January
		}
		end := LocalMidnightUTC(nextY, nextM, 1, tzOffsetMin)
		labels := make([]string, DaysInMonth(y, m))
		for i := range labels {
			labels[i] = fmt.Sprintf("%02d", i+1)
		}
		return Timeframe{StartUTC: start, EndUTC: end, Labels: labels}, nil

	case ModeYear:
		y, err := parseYear(anchor)
		if err != nil {
			return Timeframe{}, err
		}
		start := LocalMidnightUTC(y, time.January, 1, tzOffsetMin)
		end := LocalMidnightUTC(y+1, time.January, 1, tzOffsetMin)
		labels := make([]string, len(monthLabels))
		copy(labels, monthLabels)
		return Timeframe{StartUTC: start, EndUTC: end, Labels: labels}, nil
	}

	return Timeframe{}, fmt.Errorf("%w: modo desconocido %q", domain.ErrInvalidInput, mode)
}

// BucketIndex calcula el índice de bucket para un registro según el modo.
// La hora local se obtiene restando el offset al instante UTC del registro.
// Puede devolver un índice fuera de rango para registros fuera de la ventana;
// el agregador los descarta.
func BucketIndex(mode Mode, createdAt, startUTC time.Time, tzOffsetMin int) int {
	offset := time.Duration(tzOffsetMin) * time.Minute
	local := createdAt.Add(-offset).UTC()

	switch mode {
	case ModeDay:
		return local.Hour()
	case ModeWeek:
		// Días locales completos desde el lunes 00:00 local.
		startLocal := startUTC.Add(-offset).UTC()
		return int(local.Sub(startLocal) / (24 * time.Hour))
	case ModeMonth:
		return local.Day() - 1
	case ModeYear:
		return int(local.Month()) - 1
	}
	return -1
}

// DaysInMonth devuelve los días del mes para el año dado (febrero bisiesto incluido).
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func parseYMD(anchor string) (int, time.Month, int, error) {
	t, err := time.Parse("2006-01-02", anchor)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: anchor inválido para día/semana (YYYY-MM-DD): %q", domain.ErrInvalidInput, anchor)
	}
	return t.Year(), t.Month(), t.Day(), nil
}

func parseYM(anchor string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", anchor)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: anchor inválido para mes (YYYY-MM): %q", domain.ErrInvalidInput, anchor)
	}
	return t.Year(), t.Month(), nil
}

func parseYear(anchor string) (int, error) {
	if len(anchor) != 4 || strings.TrimLeft(anchor, "0123456789") != "" {
		return 0, fmt.Errorf("%w: anchor inválido para año (YYYY): %q", domain.ErrInvalidInput, anchor)
	}
	y, err := strconv.Atoi(anchor)
	if err != nil || y <= 0 {
		return 0, fmt.Errorf("%w: anchor inválido para año (YYYY): %q", domain.ErrInvalidInput, anchor)
	}
	return y, nil
}
