package main

import (
	"encoding/json"
	"fmt"
	"log"
)

// maxRenderedPayload keeps movie payloads, which routinely run to several
// kilobytes, from flooding the terminal.
const maxRenderedPayload = 2000

func logMethodResponse(name string, response any) {
	payload, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		log.Fatal(err)
	}

	rendered := string(payload)
	if len(rendered) > maxRenderedPayload {
		rendered = rendered[:maxRenderedPayload] + "\n..."
	}

	message := formatMethodReturns(name, rendered, nil)
	log.Println(message)
}

func formatMethodReturns(name string, response any, err error) string {
	return fmt.Sprintf("client.%s() = %v, %v", name, response, err)
}
