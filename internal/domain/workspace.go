package domain

// Workspace é a entidade externa de negócio dona das campanhas; consumida
// como colaborador opaco do backend remoto
type Workspace struct {
	ID            string   `json:"id"`
	BusinessName  string   `json:"business_name"`
	Industry      string   `json:"industry"`
	Website       string   `json:"website"`
	Logo          string   `json:"logo"`
	CreativesPath []string `json:"creatives_path"`
}

// FirstCreative retorna o primeiro asset do workspace, usado como último
// recurso na cadeia de resolução de mídia do publish
func (w *Workspace) FirstCreative() string {
	if w == nil || len(w.CreativesPath) == 0 {
		return ""
	}
	return w.CreativesPath[0]
}
