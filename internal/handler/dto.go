package handler

type AvisoResponse struct {
	ID               int64  `json:"id"`
	Titulo           string `json:"titulo"`
	Categoria        string `json:"categoria"`
	Texto            string `json:"texto"`
	TextoResumido    string `json:"texto_resumido"`
	Enlace           string `json:"enlace"`
	FechaPublicacion string `json:"fecha_publicacion"`
	Modelo           string `json:"modelo"`
	Timestamp        string `json:"timestamp"`
	TextoCorto       string `json:"texto_corto"`
	TextoLargo       string `json:"texto_largo"`
}

type AvisosResponse struct {
	Avisos       []AvisoResponse `json:"avisos"`
	Total        int             `json:"total"`
	Pagina       int             `json:"pagina"`
	TotalPaginas int             `json:"total_paginas"`
}

type CategoriaResponse struct {
	Nombre   string `json:"nombre"`
	Cantidad int    `json:"cantidad"`
}

type TestingResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
