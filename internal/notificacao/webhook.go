package notificacao

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
)

// EnviarWebhookResgateTotal avisa o backoffice quando um resgate total é
// solicitado, para priorizar a aprovação e a liquidação.
func EnviarWebhookResgateTotal(investimentoID uint, valorBruto string) {
	url := os.Getenv("WEBHOOK_ALERTA_URL")
	if url == "" {
		return
	}

	payload := map[string]string{
		"mensagem":       "Alerta: resgate total solicitado",
		"investimentoId": fmt.Sprint(investimentoID),
		"valorBruto":     valorBruto,
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("Erro ao enviar webhook: %v", err)
		return
	}
	defer resp.Body.Close()
}
