package main

import (
	"fmt"
	"strconv"

	"github.com/zachlisp/go-zachlisp/token"

	"github.com/scott-cotton/cli"
)

func tokens(cfg *TokensConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		d, err := readInput(cc.In, file)
		if err != nil {
			return err
		}
		for _, tok := range token.Tokenize(nil, d) {
			if tok.Type.IsSkipped() && !cfg.All {
				continue
			}
			if _, err := fmt.Fprintf(cc.Out, "%s %d:%d %s\n", tok.Type, tok.Pos.Line, tok.Pos.Col, tokenText(&tok)); err != nil {
				return err
			}
		}
	}
	return nil
}

func tokenText(tok *token.Token) string {
	if tok.Value.Kind == token.TextValue {
		return strconv.Quote(tok.Value.Text)
	}
	return tok.Value.Kind.String() + "(" + tok.String() + ")"
}
