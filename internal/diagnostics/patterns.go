package diagnostics

// defaultPatterns assembles the full rule database in registration order:
// registration order is significant, since findMatchingPattern keeps the
// first pattern on a score tie.
func defaultPatterns() []OptimizationPattern {
	var patterns []OptimizationPattern
	patterns = append(patterns, inliningPatterns()...)
	patterns = append(patterns, loopVectorizationPatterns()...)
	patterns = append(patterns, slpVectorizationPatterns()...)
	patterns = append(patterns, sroaPatterns()...)
	patterns = append(patterns, loopUnrollPatterns()...)
	patterns = append(patterns, tailCallPatterns()...)
	patterns = append(patterns, gvnPatterns()...)
	patterns = append(patterns, memCpyOptPatterns()...)
	patterns = append(patterns, loopInterchangePatterns()...)
	patterns = append(patterns, genericPatterns()...)
	return patterns
}

func inliningPatterns() []OptimizationPattern {
	return []OptimizationPattern{
		{
			PassNameSubstr:   "inline",
			RemarkNameSubstr: "NotInlined",
			MessageSubstr:    "too costly",
			ShortReason:      "Inlining rejected: callee too large",
			DetailedExplanation: "The inliner evaluated the cost of copying the callee's body into the " +
				"call site and found it would exceed the configured threshold. LLVM " +
				"computes an abstract cost based on instruction count, call overhead, " +
				"and attribute bonuses. When this cost exceeds InlineThreshold (default " +
				"225), inlining is refused to avoid binary size blowup.",
			RootCause: "The callee function body is too large for the inliner to justify " +
				"duplicating at this call site.",
			OptimizerIntent: "The optimizer wanted to replace the call instruction with a direct " +
				"copy of the callee body, eliminating call overhead, enabling " +
				"further constant propagation and dead code elimination at the call site.",
			Suggestions: []FixSuggestion{
				fix("Mark the function __attribute__((always_inline)) to force "+
					"inlining regardless of cost",
					"__attribute__((always_inline)) int myFunc() { ... }"),
				fix("Split the callee into smaller helper functions so the hot "+
					"path is small enough to inline", ""),
				fix("Pass -mllvm -inline-threshold=500 (or higher) to raise the "+
					"inlining budget for this translation unit", ""),
				irFix("Add !llvm.inline.hint metadata to the call instruction",
					"call i32 @foo() !llvm.inline.hint !{i32 1}"),
			},
			Severity:         High,
			EstimatedSpeedup: 1.3,
		},
		{
			PassNameSubstr:   "inline",
			RemarkNameSubstr: "NotInlined",
			MessageSubstr:    "recursive",
			ShortReason:      "Inlining rejected: recursive function",
			DetailedExplanation: "The inliner never inlines recursive functions because doing so could " +
				"produce infinite code duplication. Even mutual recursion (A calls B " +
				"calls A) blocks inlining across the entire call chain.",
			RootCause: "The function is directly or indirectly recursive.",
			OptimizerIntent: "The optimizer would have eliminated the call frame and replaced the " +
				"call with inlined code, but recursion makes this impossible.",
			Suggestions: []FixSuggestion{
				fix("Refactor to an iterative implementation using an explicit "+
					"stack, which can then be inlined normally", ""),
				fix("Use trampolining / continuation-passing style for tail-recursive "+
					"cases; the tail call eliminator will then handle the recursion", ""),
				fix("If only the base case is hot, manually inline it and dispatch "+
					"to the recursive version only for the general case", ""),
			},
			Severity:         Medium,
			EstimatedSpeedup: 0.0,
		},
		{
			PassNameSubstr:   "inline",
			RemarkNameSubstr: "NotInlined",
			MessageSubstr:    "noinline",
			ShortReason:      "Inlining rejected: noinline attribute present",
			DetailedExplanation: "The function has the 'noinline' attribute set, which is an explicit " +
				"programmer directive telling LLVM's inliner to never inline this " +
				"function. This takes precedence over all cost heuristics.",
			RootCause: "The 'noinline' attribute on the function or call site is preventing " +
				"the inliner from proceeding.",
			OptimizerIntent: "The optimizer would have inlined this function to eliminate the call " +
				"overhead and unlock downstream optimizations.",
			Suggestions: []FixSuggestion{
				fix("Remove the __attribute__((noinline)) or [[gnu::noinline]] "+
					"annotation from the function declaration if it was added "+
					"by mistake or is no longer needed", ""),
				fix("If noinline was added for debugging, use a compilation flag "+
					"instead so you can easily toggle it", ""),
				irFix("Remove the 'noinline' attribute from the function definition "+
					"in the IR",
					"define i32 @foo() { ... }  ; remove 'noinline' from attrs"),
			},
			Severity:         High,
			EstimatedSpeedup: 1.25,
		},
		{
			PassNameSubstr:   "inline",
			RemarkNameSubstr: "NotInlined",
			MessageSubstr:    "indirect call",
			ShortReason:      "Inlining rejected: indirect call site",
			DetailedExplanation: "The call is made through a function pointer or virtual dispatch, so " +
				"the inliner cannot determine the callee statically. LLVM can inline " +
				"indirect calls only after devirtualization resolves the callee.",
			RootCause: "The call target is not known at compile time (function pointer, vtable " +
				"dispatch, or unresolved COMDAT).",
			OptimizerIntent: "The optimizer wanted to devirtualize the call and then inline the " +
				"resolved callee to eliminate the indirect branch overhead.",
			Suggestions: []FixSuggestion{
				fix("Use final/override on virtual methods to allow devirtualization, "+
					"or seal the class with [[clang::final]]",
					"class Derived final : public Base { ... };"),
				fix("Replace function pointer callbacks with templates/lambdas so "+
					"the callee is known at the call site", ""),
				fix("Use Profile-Guided Optimization (PGO) which gives LLVM "+
					"runtime frequency data to speculatively devirtualize hot "+
					"indirect calls", ""),
				irFix("Add !callees metadata to hint the indirect call targets",
					"call void %fp() !callees !{void ()* @concrete_impl}"),
			},
			Severity:         High,
			EstimatedSpeedup: 1.5,
		},
		{
			PassNameSubstr:   "inline",
			RemarkNameSubstr: "NotInlined",
			MessageSubstr:    "unavailable definition",
			ShortReason:      "Inlining rejected: callee definition not available",
			DetailedExplanation: "The inliner cannot inline a function whose definition is in a " +
				"different translation unit and has not been provided via LTO. " +
				"When building without LTO, each .o file is compiled independently " +
				"and definitions across files are invisible to each other.",
			RootCause: "The callee is declared but not defined in this translation unit, " +
				"and Link-Time Optimization (LTO) is not enabled.",
			OptimizerIntent: "The optimizer wanted to inline the callee body but could not access " +
				"the function definition.",
			Suggestions: []FixSuggestion{
				fix("Enable Link-Time Optimization with -flto (thin LTO) or "+
					"-flto=full (full LTO) to make cross-module inlining possible",
					"clang -O2 -flto=thin source.cpp -o binary"),
				fix("Move the function definition to a header and mark it inline "+
					"or put it in the same translation unit as its primary caller", ""),
				fix("Use __attribute__((visibility(\"default\"))) with LTO to ensure "+
					"the symbol is available across module boundaries", ""),
			},
			Severity:         Medium,
			EstimatedSpeedup: 1.4,
		},
	}
}

func loopVectorizationPatterns() []OptimizationPattern {
	return []OptimizationPattern{
		{
			PassNameSubstr:   "loop-vectorize",
			RemarkNameSubstr: "MissedDetails",
			MessageSubstr:    "loop not vectorized",
			ShortReason:      "Loop vectorization failed",
			DetailedExplanation: "The Loop Vectorizer (LV) attempted to transform the scalar loop into " +
				"a SIMD loop but was blocked. LV requires: a countable trip count, " +
				"no loop-carried dependencies on the vectorized elements, no function " +
				"calls with side effects inside the loop body, and no pointer aliasing " +
				"between loop operands. When any of these preconditions fail, LV " +
				"emits a missed remark.",
			RootCause: "One or more preconditions for loop vectorization are not satisfied.",
			OptimizerIntent: "The optimizer wanted to transform the loop to process 4-16 elements " +
				"per iteration using SIMD instructions (SSE/AVX/SVE), potentially " +
				"yielding 4-8x throughput improvement on CPU-bound loops.",
			Suggestions: []FixSuggestion{
				fix("Add __restrict__ qualifiers to pointer parameters to eliminate "+
					"aliasing uncertainty",
					"void f(float* __restrict__ a, float* __restrict__ b, int n)"),
				fix("Annotate the loop with #pragma clang loop vectorize(enable) "+
					"to force vectorization with safety checks",
					"#pragma clang loop vectorize(enable)\nfor(int i=0;i<n;++i)..."),
				fix("Ensure the loop has a simple induction variable and no early "+
					"exits (break/continue) inside the body", ""),
				fix("Remove any function calls from the loop body that have unknown "+
					"side effects; consider marking them with __attribute__((const))", ""),
				irFix("Add !llvm.loop metadata with vectorize.enable=true",
					"br i1 %cond, label %loop, label %exit, !llvm.loop !{!{!\"llvm.loop.vectorize.enable\", i1 true}}"),
			},
			Severity:         High,
			EstimatedSpeedup: 4.0,
		},
		{
			PassNameSubstr: "loop-vectorize",
			MessageSubstr:  "cannot identify array bounds",
			ShortReason:    "Loop vectorization blocked: unknown array bounds",
			DetailedExplanation: "The vectorizer requires knowledge of the loop trip count at the point " +
				"it builds the vector loop. If pointer arithmetic is used and LLVM " +
				"cannot prove the distance between start and end pointers at compile " +
				"time, it cannot generate the scalar remainder loop safely.",
			RootCause: "LLVM cannot statically or dynamically determine the iteration count " +
				"of the loop, blocking the vector preamble/remainder generation.",
			OptimizerIntent: "The optimizer wanted to peel a scalar prologue to align memory, " +
				"run a SIMD body for the bulk of iterations, and a scalar epilogue " +
				"for the remainder, but it needs a known upper bound for this.",
			Suggestions: []FixSuggestion{
				fix("Use index-based loops with an explicit integer bound instead "+
					"of pointer arithmetic",
					"for (int i = 0; i < n; ++i)  // instead of while (p < end)"),
				fix("Add __builtin_assume(n > 0 && n % 4 == 0) before the loop to "+
					"provide bound information to the optimizer", ""),
				fix("Replace raw pointer iteration with std::span<T> which carries "+
					"size information", ""),
			},
			Severity:         High,
			EstimatedSpeedup: 4.0,
		},
		{
			PassNameSubstr: "loop-vectorize",
			MessageSubstr:  "unsafe dependent memory operations",
			ShortReason:    "Loop vectorization blocked: memory dependency / aliasing",
			DetailedExplanation: "The Loop Access Analysis (LAA) detected or could not disprove a " +
				"memory-carried dependency between loop iterations. If element i of " +
				"array A is read while element i+k of A is written in the same loop, " +
				"vectorizing would read future writes, changing program semantics.",
			RootCause: "A read-after-write, write-after-read, or write-after-write dependency " +
				"between iterations was found or could not be ruled out by alias analysis.",
			OptimizerIntent: "The optimizer wanted to load/store multiple elements simultaneously " +
				"using SIMD gather/scatter or contiguous loads, but the dependency " +
				"prevents reordering memory operations.",
			Suggestions: []FixSuggestion{
				fix("If you know the arrays do not alias, add __restrict__ to all "+
					"pointer parameters",
					"void f(int* __restrict__ out, const int* __restrict__ in, int n)"),
				fix("Add #pragma clang loop vectorize(assume_safety) to assert "+
					"there are no dependencies (only safe if you know this is true)",
					"#pragma clang loop vectorize(assume_safety)"),
				fix("If a read-after-write dependency actually exists (e.g., "+
					"a[i] = a[i-1] + c), consider restructuring the loop to use "+
					"a temporary buffer, or accept that the loop cannot be vectorized", ""),
				irFix("Add !alias.scope and !noalias metadata to loads/stores "+
					"to provide aliasing proof to the backend", ""),
			},
			Severity:         Critical,
			EstimatedSpeedup: 4.0,
		},
		{
			PassNameSubstr: "loop-vectorize",
			MessageSubstr:  "value that could not be identified as reduction",
			ShortReason:    "Loop vectorization blocked: non-reducible accumulator",
			DetailedExplanation: "The vectorizer recognizes a limited set of reduction patterns: sum, " +
				"product, min, max, bitwise AND/OR/XOR. When a loop accumulates into " +
				"a variable in a way that does not match these patterns (e.g., " +
				"conditional updates, chains of dependent stores), LV cannot safely " +
				"split the computation across SIMD lanes.",
			RootCause: "The loop accumulator update cannot be expressed as a vectorizable " +
				"reduction operation.",
			OptimizerIntent: "The optimizer wanted to compute partial reductions in each SIMD lane " +
				"and combine them with a horizontal reduction at the end of the loop.",
			Suggestions: []FixSuggestion{
				fix("Ensure reductions use simple operators: +=, *=, &=, |=, ^= "+
					"or std::min/std::max without conditionals inside", ""),
				fix("Replace conditional updates like 'if (x > 0) sum += x' with "+
					"SIMD-friendly forms like 'sum += std::max(0, x)'", ""),
				fix("Split a multi-accumulator loop into separate loops, each with "+
					"a single reduction variable", ""),
			},
			Severity:         Medium,
			EstimatedSpeedup: 3.0,
		},
		{
			PassNameSubstr: "loop-vectorize",
			MessageSubstr:  "call instruction cannot be vectorized",
			ShortReason:    "Loop vectorization blocked: non-vectorizable function call",
			DetailedExplanation: "A function call inside the loop body prevents vectorization. To " +
				"vectorize a call, LLVM needs either a SIMD vector variant declared " +
				"via #pragma omp declare simd or a known vectorizable intrinsic " +
				"(e.g., llvm.sqrt, llvm.fabs). Calls to opaque library functions are " +
				"treated as barriers.",
			RootCause: "A function call in the loop body has no known SIMD vector variant.",
			OptimizerIntent: "The optimizer wanted to replace the scalar function call with a " +
				"vectorized intrinsic that processes all loop elements simultaneously.",
			Suggestions: []FixSuggestion{
				fix("Replace library calls with equivalent intrinsics: use "+
					"sqrtf() instead of custom sqrt, fabsf() for fabs, etc. "+
					"which have SIMD-vectorizable forms", ""),
				fix("Mark your function with #pragma omp declare simd to declare "+
					"a vector variant for the loop vectorizer",
					"#pragma omp declare simd\nfloat myFunc(float x);"),
				fix("If the function has no side effects, mark it "+
					"__attribute__((const)) or __attribute__((pure)) to allow "+
					"LLVM to treat it as a math function", ""),
				fix("Manually vectorize the call site by extracting loop body "+
					"into a SIMD function using SIMD intrinsics or Eigen/xsimd", ""),
			},
			Severity:         High,
			EstimatedSpeedup: 3.5,
		},
	}
}

func slpVectorizationPatterns() []OptimizationPattern {
	return []OptimizationPattern{
		{
			PassNameSubstr:   "slp-vectorizer",
			RemarkNameSubstr: "NotVectorized",
			ShortReason:      "SLP vectorization failed",
			DetailedExplanation: "The Superword-Level Parallelism (SLP) vectorizer looks for independent " +
				"scalar operations that could be packed into a single SIMD instruction. " +
				"Unlike loop vectorization, SLP works on straight-line code. It fails " +
				"when there are memory dependency chains between the candidate operations, " +
				"when target-specific costs show vectorizing is not beneficial, or when " +
				"the operations don't form a tree-shaped computation graph.",
			RootCause: "The scalar operations could not be packed into SIMD because of " +
				"dependencies, cost model rejection, or irregular access patterns.",
			OptimizerIntent: "The optimizer wanted to combine independent scalar arithmetic operations " +
				"into a single SIMD instruction, e.g., packing four f32 adds into " +
				"one _mm_add_ps.",
			Suggestions: []FixSuggestion{
				fix("Ensure independent scalar computations operate on contiguous "+
					"memory (struct-of-arrays layout is more SLP-friendly than "+
					"array-of-structs)",
					"float xs[N], ys[N];  // SoA, not struct{float x,y;}[N]"),
				fix("Avoid breaking operation chains with conditionals or function "+
					"calls between the independent computations", ""),
				fix("Use #pragma clang loop unroll(full) on small loops to expose "+
					"more SLP opportunities to the vectorizer", ""),
			},
			Severity:         Medium,
			EstimatedSpeedup: 2.0,
		},
	}
}

func sroaPatterns() []OptimizationPattern {
	return []OptimizationPattern{
		{
			PassNameSubstr:   "sroa",
			RemarkNameSubstr: "CannotSROAElement",
			ShortReason:      "SROA failed: aggregate cannot be decomposed",
			DetailedExplanation: "Scalar Replacement of Aggregates (SROA) decomposes alloca'd struct or " +
				"array allocations into individual scalar SSA values, enabling downstream " +
				"optimizations like register allocation and load elimination. SROA fails " +
				"when the address of the aggregate escapes (e.g., passed to an opaque " +
				"function, stored in memory, or cast to a different type), because in " +
				"that case the aggregate must remain as a memory object.",
			RootCause: "The address of the alloca'd aggregate escapes the function or is used " +
				"in a way that prevents SROA from replacing it with scalars.",
			OptimizerIntent: "The optimizer wanted to replace the alloca with individual scalar " +
				"variables, one per struct field, enabling them to be allocated in " +
				"registers rather than stack memory.",
			Suggestions: []FixSuggestion{
				fix("Avoid taking the address of local structs and passing it to "+
					"external functions; pass fields individually instead", ""),
				fix("If you must pass a struct by pointer, consider using a "+
					"temporary local copy instead of the original alloca", ""),
				fix("Remove memcpy calls on the struct and use field-by-field "+
					"assignment instead, which SROA can handle", ""),
				irFix("Ensure the alloca is only used with getelementptr and "+
					"load/store; any bitcast or call using the alloca pointer "+
					"blocks SROA", ""),
			},
			Severity:         High,
			EstimatedSpeedup: 1.5,
		},
		{
			PassNameSubstr: "sroa",
			MessageSubstr:  "address taken",
			ShortReason:    "SROA failed: address of local variable is taken",
			DetailedExplanation: "When a local variable's address is taken (e.g., '&localVar'), LLVM " +
				"cannot track all reads and writes to it through SSA form. The variable " +
				"must remain as an alloca in memory. This blocks mem2reg and prevents " +
				"the variable from being promoted to a register.",
			RootCause: "The alloca's address escapes the current function via a pointer, " +
				"preventing SROA and mem2reg from eliminating the stack slot.",
			OptimizerIntent: "The optimizer wanted to promote this stack variable to a register " +
				"(SSA value) and completely eliminate the alloca instruction.",
			Suggestions: []FixSuggestion{
				fix("Remove address-taking: if the address is only needed for "+
					"a single call, restructure the call to take the value directly", ""),
				fix("If the address is stored in a struct, consider using an "+
					"index or ID instead of a raw pointer", ""),
				fix("For output parameters, prefer returning values directly or "+
					"using std::optional<T> / std::tuple<T,U> instead of T*", ""),
			},
			Severity:         Medium,
			EstimatedSpeedup: 1.4,
		},
	}
}

func loopUnrollPatterns() []OptimizationPattern {
	return []OptimizationPattern{
		{
			PassNameSubstr:   "loop-unroll",
			RemarkNameSubstr: "FullUnrollAssumed",
			MessageSubstr:    "unknown trip count",
			ShortReason:      "Loop unrolling skipped: trip count not statically known",
			DetailedExplanation: "Full loop unrolling requires the loop to execute a fixed, statically " +
				"known number of times. When the trip count depends on a runtime value, " +
				"LLVM cannot generate separate iterations. Partial unrolling is still " +
				"possible but requires a known divisibility property.",
			RootCause: "The loop's iteration count is a runtime variable with no statically " +
				"known value or upper bound.",
			OptimizerIntent: "The optimizer wanted to fully unroll the loop, eliminating the branch " +
				"and induction variable update overhead, and exposing all loop body " +
				"instructions to the instruction scheduler.",
			Suggestions: []FixSuggestion{
				fix("If the trip count is always a small constant, use a template "+
					"parameter or constexpr variable",
					"template<int N>\nvoid process() { for (int i = 0; i < N; ++i) ... }"),
				fix("Add __builtin_expect or __builtin_assume to hint the probable "+
					"trip count to the optimizer", ""),
				fix("Use #pragma clang loop unroll_count(N) to request partial "+
					"unrolling by a factor of N even without a known trip count",
					"#pragma clang loop unroll_count(4)\nfor(int i=0; i<n; ++i)..."),
			},
			Severity:         Low,
			EstimatedSpeedup: 1.15,
		},
		{
			PassNameSubstr: "loop-unroll",
			MessageSubstr:  "instruction count too high",
			ShortReason:    "Loop unrolling rejected: code size would be too large",
			DetailedExplanation: "LLVM's loop unroller uses a cost model to estimate the instruction " +
				"count after unrolling. If unrolling by factor F would produce more " +
				"instructions than the UnrollThreshold limit, the unroll is rejected. " +
				"This prevents binary bloat and instruction cache pressure.",
			RootCause: "Unrolling the loop body would produce too many instructions, exceeding " +
				"the unroll threshold.",
			OptimizerIntent: "The optimizer wanted to replicate the loop body N times to reduce " +
				"branch overhead and improve the instruction scheduler's window.",
			Suggestions: []FixSuggestion{
				fix("Request a smaller unroll factor with "+
					"#pragma clang loop unroll_count(2)",
					"#pragma clang loop unroll_count(2)"),
				fix("Simplify the loop body to reduce its instruction count, "+
					"making full unrolling feasible", ""),
				fix("Pass -mllvm -unroll-max-count=8 to control the maximum "+
					"unroll factor globally", ""),
			},
			Severity:         Low,
			EstimatedSpeedup: 1.1,
		},
	}
}

func tailCallPatterns() []OptimizationPattern {
	return []OptimizationPattern{
		{
			PassNameSubstr:   "tailcallelim",
			RemarkNameSubstr: "UnableToTransform",
			ShortReason:      "Tail call elimination failed",
			DetailedExplanation: "Tail call elimination (TCE) converts a recursive call in tail position " +
				"into a jump, eliminating stack frame growth. TCE requires: the call is " +
				"in strict tail position (no computation after it), the calling and " +
				"callee conventions match, no live variables on the stack are needed " +
				"after the call, and the function does not use byval arguments that " +
				"would be clobbered.",
			RootCause: "The call is not in proper tail position, or there are live values on " +
				"the stack needed after the call, or calling conventions differ.",
			OptimizerIntent: "The optimizer wanted to replace the recursive call with a jump to the " +
				"function's entry block, turning recursion into an efficient loop " +
				"without stack growth.",
			Suggestions: []FixSuggestion{
				fix("Ensure the recursive call is the very last operation: "+
					"return f(n-1) not return f(n-1) + 1",
					"int f(int n) { return n <= 0 ? base : f(n-1); }  // good tail position"),
				fix("Move accumulator updates into extra parameters (accumulator-passing "+
					"style) so the tail call is the final expression",
					"int f(int n, int acc) { return n == 0 ? acc : f(n-1, acc+n); }"),
				fix("Ensure the function is marked [[clang::musttail]] if you "+
					"require guaranteed TCE, which will give a compiler error if "+
					"TCE cannot be applied rather than silent fallback", ""),
			},
			Severity:         Medium,
			EstimatedSpeedup: 1.3,
		},
	}
}

func gvnPatterns() []OptimizationPattern {
	return []OptimizationPattern{
		{
			PassNameSubstr:   "gvn",
			RemarkNameSubstr: "LoadElim",
			ShortReason:      "GVN failed to eliminate redundant load",
			DetailedExplanation: "Global Value Numbering (GVN) eliminates redundant loads by proving " +
				"that two loads from the same address return the same value. This proof " +
				"requires: no intervening stores to the same or aliasing address, " +
				"no function calls that could modify the location, and a dominator " +
				"relationship between the two loads.",
			RootCause: "An intervening store, aliased write, or unknown function call " +
				"prevents GVN from proving the load is redundant.",
			OptimizerIntent: "The optimizer wanted to replace the second load with the already-" +
				"computed value from the first load, eliminating the memory access.",
			Suggestions: []FixSuggestion{
				fix("Cache loaded values in local variables to make the "+
					"redundancy syntactically obvious",
					"int v = *ptr;  use(v); use(v);  // instead of use(*ptr); use(*ptr)"),
				fix("Mark functions that don't modify memory as __attribute__((pure)) "+
					"or __attribute__((const)) to prevent them from blocking GVN", ""),
				fix("Use __restrict__ on pointers to allow alias analysis to "+
					"prove the locations don't overlap", ""),
			},
			Severity:         Medium,
			EstimatedSpeedup: 1.2,
		},
		{
			PassNameSubstr:   "gvn",
			RemarkNameSubstr: "LoadClobbered",
			ShortReason:      "Global Value Numbering failed: load clobbered by store",
			DetailedExplanation: "The optimizer found a load that could potentially be replaced by a " +
				"previous value (redundant load elimination), but it found a store " +
				"instruction that might modify the memory location between the source " +
				"and the load. This is often caused by pointer aliasing uncertainty.",
			RootCause: "A store instruction clobbers the memory location of a load, preventing " +
				"redundant load elimination.",
			OptimizerIntent: "The optimizer wanted to eliminate the load instruction and reuse a " +
				"value already in a register.",
			Suggestions: []FixSuggestion{
				fix("Use __restrict__ if you know the store does not affect the load's pointer", ""),
				fix("Hoists the load before the store if they are independent", ""),
			},
			Severity:         Medium,
			EstimatedSpeedup: 1.2,
		},
	}
}

func memCpyOptPatterns() []OptimizationPattern {
	return []OptimizationPattern{
		{
			PassNameSubstr:      "memcpyopt",
			ShortReason:         "MemCpyOpt failed to optimize memory copy",
			DetailedExplanation: "MemCpyOpt looks for patterns like a series of scalar stores followed " +
				"by a use of those values via a copy, and tries to merge them into a " +
				"single memcpy. It also tries to eliminate redundant memcpy chains " +
				"(A -> B -> C becomes A -> C). These transforms require the source and " +
				"destination to not alias, the copy to cover the full object, and no " +
				"intervening modifications.",
			RootCause: "Aliasing, partial copies, or intervening modifications prevent the " +
				"memory copy optimization.",
			OptimizerIntent: "The optimizer wanted to merge or eliminate memory copy operations " +
				"to reduce unnecessary data movement.",
			Suggestions: []FixSuggestion{
				fix("Use __restrict__ on pointers to enable aliasing proof", ""),
				fix("Ensure struct copies use value assignment (a = b) rather than "+
					"byte-level memcpy for better optimization opportunities", ""),
				fix("Pass destination buffers directly to the producer instead of "+
					"using an intermediate buffer", ""),
			},
			Severity:         Low,
			EstimatedSpeedup: 1.1,
		},
	}
}

func loopInterchangePatterns() []OptimizationPattern {
	return []OptimizationPattern{
		{
			PassNameSubstr:      "loop-interchange",
			ShortReason:         "Loop interchange failed",
			DetailedExplanation: "Loop interchange reorders nested loops to improve memory locality " +
				"(making the innermost loop access memory sequentially). This requires " +
				"the loop nest to be perfectly nested (no code between loop headers), " +
				"the loops to be interchangeable without changing semantics (checked via " +
				"dependency analysis), and both loops to have at least one common " +
				"induction variable dependency.",
			RootCause: "The loop nest is not perfectly nested, has disqualifying dependencies, " +
				"or the interchange is not profitable according to the cost model.",
			OptimizerIntent: "The optimizer wanted to swap the loop order to make the inner loop " +
				"stride-1 through memory, improving cache line utilization.",
			Suggestions: []FixSuggestion{
				fix("Make the loop nest perfectly nested: remove all statements "+
					"between the outer and inner loop headers",
					"for(i) { for(j) { body; } }  // no stmts between for-loops"),
				fix("Change array access from A[j][i] to A[i][j] in the source to "+
					"manually achieve the cache-friendly access pattern", ""),
				fix("Use row-major (C-style) array storage and ensure the innermost "+
					"loop iterates over the last index", ""),
			},
			Severity:         Medium,
			EstimatedSpeedup: 2.0,
		},
	}
}

func genericPatterns() []OptimizationPattern {
	return []OptimizationPattern{
		{
			RemarkNameSubstr: "NeverInline",
			ShortReason:      "Optimization blocked by attribute",
			DetailedExplanation: "An explicit attribute on the function or call site is preventing " +
				"the optimization from being applied. LLVM respects programmer " +
				"annotations as final authority over the optimizer's heuristics.",
			RootCause: "An explicit attribute (noinline, optnone, volatile, etc.) overrides " +
				"the optimizer's decision.",
			OptimizerIntent: "The optimizer identified a beneficial transformation but an explicit " +
				"annotation prevented it from being applied.",
			Suggestions: []FixSuggestion{
				fix("Review whether the attribute is still necessary; remove it "+
					"if it was added for debugging or as a temporary workaround", ""),
			},
			Severity:         High,
			EstimatedSpeedup: 1.2,
		},
		{
			MessageSubstr: "optnone",
			ShortReason:   "Optimization skipped: optnone function",
			DetailedExplanation: "The function was compiled with -O0 or has the __attribute__((optnone)) " +
				"annotation, which completely disables all IR optimizations for that " +
				"function. This is typically used during debugging to prevent the " +
				"optimizer from eliminating variables or reordering operations.",
			RootCause: "The 'optnone' attribute on the function disables all optimizations.",
			OptimizerIntent: "The optimizer skipped all transformations for this function because " +
				"'optnone' was set.",
			Suggestions: []FixSuggestion{
				fix("Remove __attribute__((optnone)) from the function, or compile "+
					"without -O0 for production builds", ""),
				fix("Use __attribute__((noinline)) to prevent inlining into other "+
					"functions while still allowing optimization of the function body", ""),
			},
			Severity:         Critical,
			EstimatedSpeedup: 2.0,
		},
		{
			PassNameSubstr:      "loop-vectorize",
			MessageSubstr:       "Cannot vectorize potentially faulting early exit loop",
			ShortReason:         "Loop Vectorization failed: Non-canonical early exit",
			DetailedExplanation: "The loop contains a conditional 'break', 'return', or 'goto' that " +
				"exits the loop before the induction variable reaches its end. Most " +
				"SIMD lanes cannot easily handle unpredictable exits without specialized " +
				"predication support. This forces the optimizer to fall back to scalar " +
				"execution to ensure correctness and avoid faults.",
			RootCause: "An 'early exit' branch inside the loop body blocks vectorization.",
			OptimizerIntent: "The vectorizer wanted to process multiple iterations in parallel, but " +
				"cannot guarantee safety when iterations might stop prematurely.",
			Suggestions: []FixSuggestion{
				fix("Restructure the loop to avoid early exits; use a boolean flag "+
					"or sentinel value and process it after the loop if possible", ""),
				fix("If using C++20, consider using algorithms like std::find_if "+
					"which may have internal optimizations for such patterns", ""),
				fix("Try to hoist the early-exit check if it depends on data "+
					"invariant to the loop", ""),
			},
			Severity:         High,
			EstimatedSpeedup: 3.5,
		},
		{
			PassNameSubstr:      "inline",
			RemarkNameSubstr:    "NoDefinition",
			ShortReason:         "Inlining failed: No function definition available",
			DetailedExplanation: "The inliner cannot inline a function if its body is not available in " +
				"the current translation unit. This happens for functions defined in " +
				"other .cpp files or external libraries, unless Link Time Optimization " +
				"(LTO) is enabled.",
			RootCause: "The function body is missing in the current module.",
			OptimizerIntent: "The optimizer wanted to eliminate the call overhead by copying the " +
				"function body into the caller.",
			Suggestions: []FixSuggestion{
				fix("Enable Link Time Optimization (LTO) with -flto", ""),
				fix("Move the function definition to a header or the same file", ""),
			},
			Severity:         Medium,
			EstimatedSpeedup: 1.3,
		},
	}
}
