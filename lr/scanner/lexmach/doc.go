/*
Package lexmach provides an adapter to use the lexmachine scanner generator with
the recognizers of package lr.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

Recognizer input is a string of whitespace separated terminals. This is what
the pre-configured SymbolAdapter scans:

	scan, err := lexmach.Tokenize("( id + id ) * id")

Clients with other lexical conventions provide an init function, adding
regular expressions to lexmachine:

	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`( |\t|\n|\r)+`), lexmach.Skip)
		lexer.Add([]byte(`[a-z]+`), lexmach.MakeToken(slrgen.SymbolType))
	}
	LM, err := lexmach.NewLMAdapter(init)
	if err != nil {
		// do error handling
	}

A scanner is instantiated for each concrete input sequence.
The scanner implements the scanner.Tokenizer interface.

	scan, err := LM.Scanner("input string to tokenize")
	if err != nil {
		// do error handling
	}

On the parser side tokens are read until EOF.

	for … { // feed token into parser
		token := scan.NextToken()
		if token.TokType() != slrgen.EOFType {
			…
		}
	}

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
