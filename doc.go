/*
Package lrforge is the root of a bottom-up parser-generator toolkit.

It builds LR(0), SLR(1), LALR(1) and CLR(1) parsing tables for a
user-supplied context-free grammar and drives a shift/reduce automaton
against a tokenized input.

Building a grammar

Grammars are read from a line-oriented format, one production per line:

    S -> A a
    A -> B D
    B -> b
    B ->
    D -> d
    D ->

An empty right-hand side denotes an epsilon production. Symbols whose
first character is an uppercase ASCII letter are non-terminals; every
other symbol is a terminal. See package lr for grammar intake,
analysis, canonical-collection construction and table generation.

Parsing tables and driving a parse

Once a grammar has been read and analysed, package lr constructs the
characteristic finite-state machine (CFSM) and the ACTION/GOTO tables
for the chosen discipline. Package lr/driver then runs a standard LR
pushdown automaton against a tokenized input and reports acceptance.

License

Governed by a 3-Clause BSD license. License file may be found in the
root folder of this module.
*/
package lrforge
