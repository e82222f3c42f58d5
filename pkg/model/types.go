package model

// constantes pour les formats de fichiers
type Format string

const (
	FormatTXT Format = "txt"
	FormatVTT Format = "vtt"
)

func (f Format) Extension() string {
	return "." + string(f)
}
