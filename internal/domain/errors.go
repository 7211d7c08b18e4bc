package domain

import (
	"errors"
	"fmt"
)

// Erros da camada de dados
var (
	// Arquivo ausente, ilegível ou com conteúdo tabular inválido
	ErrFile = errors.New("dataset file error")

	// Preço que continua inválido depois da limpeza de símbolos
	ErrDataFormat = errors.New("invalid data format")

	// Coluna solicitada não existe no snapshot
	ErrMissingColumn = errors.New("missing column")

	// Documento de fronteiras (GeoJSON) malformado
	ErrFormat = errors.New("invalid boundary document")
)

// DatasetError é um erro com contexto adicional sobre o arquivo ou coluna envolvidos
type DatasetError struct {
	Err     error  // Erro base
	Path    string // Arquivo envolvido (quando aplicável)
	Column  string // Coluna envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *DatasetError) Error() string {
	msg := e.Err.Error()
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Path)
	}
	if e.Column != "" {
		msg = fmt.Sprintf("%s: column %q", msg, e.Column)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	return msg
}

// Unwrap retorna o erro subjacente
func (e *DatasetError) Unwrap() error {
	return e.Err
}

// NewFileError cria um erro de leitura de arquivo
func NewFileError(path string, details string) *DatasetError {
	return &DatasetError{Err: ErrFile, Path: path, Details: details}
}

// NewMissingColumnError cria um erro de coluna ausente
func NewMissingColumnError(column string) *DatasetError {
	return &DatasetError{Err: ErrMissingColumn, Column: column}
}

// NewDataFormatError cria um erro de formato de dado em uma coluna
func NewDataFormatError(column string, details string) *DatasetError {
	return &DatasetError{Err: ErrDataFormat, Column: column, Details: details}
}

// NewFormatError cria um erro de documento de fronteiras inválido
func NewFormatError(path string, details string) *DatasetError {
	return &DatasetError{Err: ErrFormat, Path: path, Details: details}
}
