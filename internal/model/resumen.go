package model

import "time"

type ResumenDiario struct {
	Fecha     time.Time
	Resumen   string
	Modelo    string
	Timestamp time.Time
}
