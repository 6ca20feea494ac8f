// Package nf stores boolean functions as clause sets over signed integer
// literals, in conjunctive (CNF) or disjunctive (DNF) normal form.
//
// Each clause set carries an encoding that assigns every support variable
// a 1-based index; a positive literal i stands for the variable encoded
// as i, a negative literal for its complement. The empty clause set
// denotes the identity constant of its class (true for CNF, false for
// DNF) and a clause set containing an empty clause denotes the dominator.
//
// Clause sets support restriction, absorption and canonical reduction to
// minterm/maxterm form, convert to and from the expression algebra, and
// expose the integer clause protocol consumed by external SAT solvers and
// two-level minimizers.
package nf
