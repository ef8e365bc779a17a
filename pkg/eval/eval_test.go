package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/mython/pkg/lexer"
	"github.com/GriffinCanCode/mython/pkg/parser"
)

func run(t *testing.T, src string) string {
	t.Helper()
	root, err := parser.New(lexer.New(strings.NewReader(src))).Parse()
	require.NoError(t, err)
	var buf bytes.Buffer
	ctx := NewContext(&buf)
	err = New().Run(root, ctx)
	require.NoError(t, err)
	return buf.String()
}

func TestAddition(t *testing.T) {
	assert.Equal(t, "3\n", run(t, "print 1 + 2\n"))
}

func TestStringConcatenation(t *testing.T) {
	assert.Equal(t, "hello world\n", run(t, `print "hello" + " " + "world"`+"\n"))
}

func TestArithmeticPrecedenceAndDivision(t *testing.T) {
	assert.Equal(t, "3 1\n", run(t, "x = 10\ny = 3\nprint x / y, x - y * 3\n"))
}

func TestCounterClassFieldMutation(t *testing.T) {
	src := "class Counter:\n" +
		"  def __init__(self, v):\n" +
		"    self.v = v\n" +
		"  def inc(self):\n" +
		"    self.v = self.v + 1\n" +
		"c = Counter(5)\n" +
		"c.inc()\n" +
		"c.inc()\n" +
		"print c.v\n"
	assert.Equal(t, "7\n", run(t, src))
}

func TestSingleInheritanceMethodOverride(t *testing.T) {
	src := "class A:\n" +
		"  def greet(self):\n" +
		"    print \"A\"\n" +
		"class B(A):\n" +
		"  def greet(self):\n" +
		"    print \"B\"\n" +
		"b = B()\n" +
		"b.greet()\n"
	assert.Equal(t, "B\n", run(t, src))
}

func TestSingleInheritanceFallsBackToParentMethod(t *testing.T) {
	src := "class A:\n" +
		"  def greet(self):\n" +
		"    print \"A\"\n" +
		"class B(A):\n" +
		"  def nothing(self):\n" +
		"    return 0\n" +
		"b = B()\n" +
		"b.greet()\n"
	assert.Equal(t, "A\n", run(t, src))
}

func TestFalseyZeroSelectsElseBranch(t *testing.T) {
	assert.Equal(t, "yes\n", run(t, "if 0:\n  print \"no\"\nelse:\n  print \"yes\"\n"))
}

func TestDivisionByZeroIsRuntimeError(t *testing.T) {
	root, err := parser.New(lexer.New(strings.NewReader("x = 1 / 0\n"))).Parse()
	require.NoError(t, err)
	var buf bytes.Buffer
	err = New().Run(root, NewContext(&buf))
	assert.Error(t, err)
}

func TestMethodCallOnMissingMethodReturnsNone(t *testing.T) {
	src := "class C:\n" +
		"  def greet(self):\n" +
		"    return 1\n" +
		"c = C()\n" +
		"print c.missing()\n"
	assert.Equal(t, "None\n", run(t, src))
}

func TestAndShortCircuitsWithoutEvaluatingRight(t *testing.T) {
	src := "class Side:\n" +
		"  def bang(self):\n" +
		"    print \"evaluated\"\n" +
		"    return True\n" +
		"s = Side()\n" +
		"print False and s.bang()\n"
	assert.Equal(t, "False\n", run(t, src))
}

func TestOrShortCircuitsWithoutEvaluatingRight(t *testing.T) {
	src := "class Side:\n" +
		"  def bang(self):\n" +
		"    print \"evaluated\"\n" +
		"    return True\n" +
		"s = Side()\n" +
		"print True or s.bang()\n"
	assert.Equal(t, "True\n", run(t, src))
}

func TestNotInvertsTruthiness(t *testing.T) {
	assert.Equal(t, "True\n", run(t, "print not 0\n"))
	assert.Equal(t, "False\n", run(t, "print not 1\n"))
}

func TestReturnOutsideMethodBodyIsError(t *testing.T) {
	root, err := parser.New(lexer.New(strings.NewReader("return 1\n"))).Parse()
	require.NoError(t, err)
	var buf bytes.Buffer
	err = New().Run(root, NewContext(&buf))
	assert.Error(t, err)
}

func TestUndefinedVariableIsRuntimeError(t *testing.T) {
	root, err := parser.New(lexer.New(strings.NewReader("print x\n"))).Parse()
	require.NoError(t, err)
	var buf bytes.Buffer
	err = New().Run(root, NewContext(&buf))
	assert.Error(t, err)
}
