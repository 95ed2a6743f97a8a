/*
Package domain contains the core domain models for the cinta simulator.

It defines the formal parts of a single-tape deterministic Turing machine:
Moves, Transitions, the declarative Rule shorthand, the validated immutable
Definition, and the RunResult produced by each execution. This package is kept
pure and free of external dependencies like I/O or persistence, following
Hexagonal Architecture principles.

# Key Entities

  - Definition: The validated machine (states, alphabets, transition table).
  - Rule: A declarative transition spec; read/write accept a symbol or a list.
  - Transition: A single (next state, write symbol, move) triple.
  - RunResult: The trace, verdict, final state and final tape of one run.
*/
package domain
