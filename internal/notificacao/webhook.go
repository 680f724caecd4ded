package notificacao

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strconv"
)

// EnviarAlertaContestacao avisa o canal do financeiro quando um pagamento de
// comissão entra em contestação. Falha de entrega só é logada: o alerta não
// faz parte da transação do pagamento.
func EnviarAlertaContestacao(pagamentoID, recebedorID uint, motivo string) {
	url := os.Getenv("WEBHOOK_CONTESTACAO_URL")
	if url == "" {
		return
	}

	payload := map[string]string{
		"mensagem":    "Alerta: pagamento de comissão contestado",
		"pagamentoId": strconv.FormatUint(uint64(pagamentoID), 10),
		"recebedorId": strconv.FormatUint(uint64(recebedorID), 10),
		"motivo":      motivo,
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("Erro ao enviar webhook de contestação: %v", err)
		return
	}
	defer resp.Body.Close()
}
