/*
Package chebfun provides adaptive approximation of smooth functions on [-1, 1]
by truncated Chebyshev series. A target function is sampled on progressively
finer Chebyshev grids until its series coefficients are resolved to a target
tolerance; the frozen representation then supports stable point evaluation via
the barycentric interpolation formula, as well as calculus and algebra in the
coefficient domain.
*/
package chebfun
