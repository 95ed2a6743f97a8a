/*
Package ports defines the driven ports (interfaces) for the cinta simulator.

These interfaces decouple the core from external implementations, allowing
run results to be kept in memory, in Redis, or anywhere else.

# Key Interfaces

  - RunStore: Responsible for persisting and retrieving RunResults.
*/
package ports
