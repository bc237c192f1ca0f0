package decorator_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/go-kata/patterns/decorator"
)

func TestChain(t *testing.T) {
	Convey("Given a simple component", t, func() {
		var simple decorator.Component = decorator.ConcreteComponent{}

		Convey("It behaves on its own", func() {
			So(simple.Operation(), ShouldEqual, "ConcreteComponent")
		})

		Convey("When wrapped by two decorators", func() {
			decorated := decorator.Chain[decorator.Component](simple,
				decorator.Label("ConcreteDecoratorB"),
				decorator.Label("ConcreteDecoratorA"),
			)

			Convey("The first decorator in the chain is the outermost layer", func() {
				So(decorated.Operation(), ShouldEqual,
					"ConcreteDecoratorB( ConcreteDecoratorA( ConcreteComponent ) )")
			})
		})

		Convey("When the chain is empty", func() {
			So(decorator.Chain[decorator.Component](simple).Operation(), ShouldEqual, "ConcreteComponent")
		})
	})
}

func TestFunc(t *testing.T) {
	Convey("Func adapts a plain function into a Decorator", t, func() {
		double := decorator.Func[int](func(n int) int { return n * 2 })
		So(double.Decorate(21), ShouldEqual, 42)
		So(decorator.Chain[int](1, double, double, double), ShouldEqual, 8)
	})
}
