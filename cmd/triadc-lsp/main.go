// SPDX-License-Identifier: Apache-2.0
package main

import (
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
	"triadc/internal/lsp"
)

const lsName = "triadc"

var (
	version = "0.1.0"
	handler protocol.Handler
)

func main() {
	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)
	log := commonlog.GetLogger("triadc.lsp")

	triadHandler := lsp.NewTriadHandler()

	handler = protocol.Handler{
		Initialize:                     triadHandler.Initialize,
		Initialized:                    triadHandler.Initialized,
		Shutdown:                       triadHandler.Shutdown,
		SetTrace:                       triadHandler.SetTrace,
		TextDocumentDidOpen:            triadHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           triadHandler.TextDocumentDidClose,
		TextDocumentDidChange:          triadHandler.TextDocumentDidChange,
		TextDocumentSemanticTokensFull: triadHandler.TextDocumentSemanticTokensFull,
		TextDocumentHover:              triadHandler.TextDocumentHover,
		TextDocumentFormatting:         triadHandler.TextDocumentFormatting,
	}

	// - name: the language server name (shown to clients)
	// - debug: whether to enable internal GLSP debug logs
	s := server.NewServer(&handler, lsName, false)

	log.Infof("starting %s language server %s", lsName, version)

	if err := s.RunStdio(); err != nil {
		log.Errorf("language server stopped: %s", err)
		os.Exit(1)
	}
}
