// Package oracle provides reference implementations of the decoder's
// per-frame acoustic collaborator (decoder.Oracle): a dense
// log-likelihood matrix lookup, and a small GMM-backed acoustic model.
// Neither is the object of this repository — the real acoustic model is
// always external — but both are genuine, exercised collaborators used
// by the ctcdecode CLI and by the decoder package's own tests.
package oracle

// Label is the CTC label alphabet's integer identifier, matching the arc
// Input/Output fields in the graph package.
type Label = int32
