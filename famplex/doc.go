// SPDX-License-Identifier: MIT

// Package famplex maps the FamPlex relations and equivalences tables onto BEL
// graphs.
//
// Relations (relations.csv, five columns):
//
//	HGNC,BRAF,isa,FPLX,RAF              → p(HGNC:BRAF) isA p(FPLX:RAF)
//	HGNC,MTOR,partof,FPLX,mTORC1        → complex(FPLX:mTORC1) hasMember p(HGNC:MTOR)
//
// Equivalences (equivalences.csv, three columns):
//
//	SFAM,RAS Family,RAS                 → p(SFAM:"RAS Family") equivalentTo p(FPLX:RAS)
//	GO,GO:0005956,CK2                   → p(go:"GO:0005956") equivalentTo p(FPLX:CK2)
//
// The mappers are pure functions of their rows and options; all diagnostics go
// to the logger passed with WithLogger.
package famplex
