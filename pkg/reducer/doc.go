/*
The reducer shrinks a d-Hitting-Set instance (S, C, k) to a kernel whose size only depends on k and d.
Every rule mutates the shared instance in place and keeps its degree caches consistent. Vertices forced into the
solution are committed to the instance's partial solution, so that a hitting set of the kernel together with the
partial solution always hits every edge of the original instance.

Known deviations from the textbook rules which are kept on purpose:
  - The singleton rule deletes only the satisfied singleton edge. A committed vertex stays in all other edges it
    belongs to, later rules still count it as a possible hit. Whether this was intended is unverified.
  - The high-degree rule grows its edge group incrementally and compares each candidate with the edges accepted so
    far, so the group depends on the enumeration order of edges.
  - The crown stage never finds a crown inside the pipeline. H consists of the (d-1)-sized members of W, and
    edge domination already deleted every size-d edge strictly containing one of them, so no vertex of I is
    adjacent to H. Crown deletion and Options.VerifyCrown only take effect when crown.Construct is given an
    instance which was not dominated first.
  - The size bound on W is k^2 as for d = 3. With d > 3 this may classify yes-instances as infeasible,
    Options.WBound = DegreeBound uses k^(d-1) instead.
*/
package reducer
