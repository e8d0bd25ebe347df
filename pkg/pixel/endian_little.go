//go:build 386 || amd64 || amd64p32 || arm || arm64 || loong64 || mips64le || mipsle || ppc64le || riscv64 || wasm

package pixel

// hostBigEndian selects the canonical-compatible fix-up path at compile time
// instead of probing a byte at runtime.
const hostBigEndian = false
