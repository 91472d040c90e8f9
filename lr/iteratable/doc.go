/*
Package iteratable implements a small iteratable container data structure.

Set is a special-purpose set type, suitable mainly for implementing
algorithms around closure and fixpoint computations (FIRST/FOLLOW, LR
item-set closures), where it is convenient to iterate a set and mutate
it in the very same pass: Union and Add are safe to call from inside an
IterateOnce/Next loop over the same set, and the loop will see newly
added members before it terminates.

Unusually, Add and Union are destructive: they mutate the receiver in
place. Copy and Difference return new sets and leave the receiver as it
is.

License

Governed by a 3-Clause BSD license. License file may be found in the
root folder of this module.
*/
package iteratable
