// Package ropgen holds rapid generators for rop values, shared by the property
// tests of rop and the packages built on it.
package ropgen
