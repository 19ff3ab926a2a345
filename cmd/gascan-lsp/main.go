// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"gascan/internal/lsp"
)

const lsName = "gascan"

var handler protocol.Handler

func main() {
	commonlog.Configure(1, nil)

	gasHandler := lsp.NewHandler()

	handler = protocol.Handler{
		Initialize:            gasHandler.Initialize,
		Initialized:           gasHandler.Initialized,
		Shutdown:              gasHandler.Shutdown,
		TextDocumentDidOpen:   gasHandler.TextDocumentDidOpen,
		TextDocumentDidChange: gasHandler.TextDocumentDidChange,
		TextDocumentDidClose:  gasHandler.TextDocumentDidClose,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting gascan LSP server...")

	if err := s.RunStdio(); err != nil {
		log.Println("Error starting gascan LSP server:", err)
		os.Exit(1)
	}
}
